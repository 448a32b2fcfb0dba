package response

import "github.com/skinnydoo/conduit/domain"

type Comment struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Body      string  `json:"body"`
	Author    Profile `json:"author"`
}

type CommentEnvelope struct {
	Comment Comment `json:"comment"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(DateTimeFormat),
		Body:      c.Body,
		Author:    NewProfileFromDomain(c.Author),
	}
}

func NewCommentList(comments []domain.Comment) CommentList {
	res := make([]Comment, len(comments))
	for i := range comments {
		res[i] = NewCommentFromDomain(&comments[i])
	}
	return CommentList{Comments: res}
}
