package request

// CreateComment is the body of POST /articles/:slug/comments.
type CreateComment struct {
	Comment struct {
		Body string `json:"body" binding:"required,notblank"`
	} `json:"comment" binding:"required"`
}
