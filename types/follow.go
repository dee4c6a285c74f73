package types

import "Pulse/models"

type GetFollowingListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

type GetFollowingListResponse struct {
	Following []*models.FollowingQueryResult `json:"following"`
	Total     int64                          `json:"total"`
}
