package tags

// Tag is a globally shared (text, category) label. Text is the primary
// key; the same tag row is referenced by every user and project that
// carries it.
type Tag struct {
	Text     string `json:"text"     gorm:"column:text;primaryKey;size:128"`
	Category string `json:"category" gorm:"column:category;size:64"`
}

func (Tag) TableName() string {
	return "tags"
}

type UserTag struct {
	UID     int64  `json:"uid"      gorm:"column:uid;primaryKey"`
	TagText string `json:"tag_text" gorm:"column:tag_text;primaryKey;size:128"`
}

func (UserTag) TableName() string {
	return "user_tags"
}

type ProjectTag struct {
	PID               int64  `json:"pid"                 gorm:"column:pid;primaryKey"`
	TagText           string `json:"tag_text"            gorm:"column:tag_text;primaryKey;size:128"`
	IsUserRequirement bool   `json:"is_user_requirement" gorm:"column:is_user_requirement"`
}

func (ProjectTag) TableName() string {
	return "project_tags"
}
