package users_models

// UserUrl is a linked profile (github.com + /username and the like).
// The set is fully replaced on every profile update.
type UserUrl struct {
	UID    int64  `json:"uid"    gorm:"column:uid;primaryKey"`
	Domain string `json:"domain" gorm:"column:domain;primaryKey;size:253"`
	// Max 2000 characters per url including domain
	Path string `json:"path" gorm:"column:path;size:1747"`
}

func (UserUrl) TableName() string {
	return "user_urls"
}
