package tags

// TagDTO is the submission and retrieval shape for user-owned tags.
type TagDTO struct {
	Text     string `json:"text"     binding:"required,max=128"`
	Category string `json:"category" binding:"required,max=64"`
}

// ProjectTagDTO additionally marks a tag as a requirement the project
// places on prospective members, vs a descriptive label.
type ProjectTagDTO struct {
	Text              string `json:"text"                binding:"required,max=128"`
	Category          string `json:"category"            binding:"required,max=64"`
	IsUserRequirement bool   `json:"is_user_requirement"`
}
