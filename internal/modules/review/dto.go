package review

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment,omitempty"`
}
