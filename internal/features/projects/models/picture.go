package projects_models

type ProjectPicture struct {
	PID     int64  `json:"pid" gorm:"column:pid;primaryKey"`
	Picture string `json:"picture" gorm:"column:picture;size:36;primaryKey"`
}

func (ProjectPicture) TableName() string {
	return "project_pictures"
}
