package service

import (
	"Pulse/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(CounterService), "*"),
	wire.Bind(new(ICounterService), new(*CounterService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(FollowStore), new(*dao.UserFollowDAO)),
	wire.Bind(new(UserStatsStore), new(*dao.UserStatsDAO)),
	wire.Bind(new(PostStore), new(*dao.PostDAO)),
	wire.Bind(new(PostStatsStore), new(*dao.PostStatsDAO)),
	wire.Bind(new(LikeStore), new(*dao.PostLikeDAO)),
	wire.Bind(new(CommentStore), new(*dao.CommentDAO)),
	wire.Bind(new(Tx), new(*dao.TxManager)),
)
