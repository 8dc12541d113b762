package query

import "post-service/internal/application/common"

type PostQueryResult struct {
	Result *common.PostResult `json:"result"`
}

type PostQueryListResult struct {
	Result []*common.PostResult `json:"result"`
}
