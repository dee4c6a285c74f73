package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTxManager,
	NewUsers,
	NewUserFollowDAO,
	NewUserStatsDAO,
	NewPostDAO,
	NewPostStatsDAO,
	NewPostLikeDAO,
	NewCommentDAO,
)
