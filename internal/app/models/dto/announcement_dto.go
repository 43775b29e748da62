package dto

// CreateAnnouncementRequest represents an admin publishing a global notice
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Audience    string `json:"audience" binding:"required,oneof=all tutors students parents"`
	PublishDate string `json:"publishDate"` // YYYY-MM-DD, defaults to today
}

// UpdateAnnouncementRequest represents a partial announcement update. Nil
// fields are left untouched.
type UpdateAnnouncementRequest struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Audience    *string `json:"audience,omitempty" binding:"omitempty,oneof=all tutors students parents"`
	PublishDate *string `json:"publishDate,omitempty"`
}
