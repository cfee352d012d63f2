package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Headline    string `json:"headline" binding:"required,min=1,max=200"`
	Byline      string `json:"byline" binding:"max=100"`
	Body        string `json:"body" binding:"required"`
	Conclusion  string `json:"conclusion"`
	PublisherID *uint  `json:"publisher_id"`
}

type UpdateArticleRequest struct {
	Headline   string `json:"headline" binding:"required,min=1,max=200"`
	Byline     string `json:"byline" binding:"max=100"`
	Body       string `json:"body" binding:"required"`
	Conclusion string `json:"conclusion"`
}

type SubmitReviewRequest struct {
	Comments string `json:"comments" binding:"required"`
}

type BecomePublisherRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

type AddMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type CreateNewsletterRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	IssueDate  string `json:"issue_date" binding:"required"`
	ArticleIDs []uint `json:"article_ids"`
}

type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConsumeResetRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// ArticleResponse is the legacy public wire shape of an article.
type ArticleResponse struct {
	ID         uint   `json:"id"`
	Headline   string `json:"headline"`
	Byline     string `json:"byline"`
	Body       string `json:"body"`
	Conclusion string `json:"conclusion"`
	Approved   bool   `json:"approved"`
}

func (a *Article) ToResponse() ArticleResponse {
	return ArticleResponse{
		ID:         a.ID,
		Headline:   a.Headline,
		Byline:     a.Byline,
		Body:       a.Body,
		Conclusion: a.Conclusion,
		Approved:   a.Approved,
	}
}

type ArticleListParams struct {
	Approved  *bool  `form:"approved"`
	AuthorID  uint   `form:"author_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}
