package command

import "post-service/internal/application/common"

type CreatePostCommand struct {
	Title   string  `json:"title"`
	Content *string `json:"content,omitempty"`
}

type CreatePostCommandResult struct {
	Result *common.PostResult `json:"result"`
}
