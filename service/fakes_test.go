package service

import (
	"Pulse/models"
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// 内存版存储实现，行为对齐 dao 层：
// 唯一索引冲突返回 gorm.ErrDuplicatedKey，删除返回受影响行数，
// 计数增减是持锁的原子操作
type memStore struct {
	mu sync.Mutex

	users     map[uint64]*models.Users
	follows   map[[2]uint64]*models.UserFollow
	userStats map[uint64]*models.UserStats
	posts     map[uint64]*models.Post
	postStats map[uint64]*models.PostStats
	likes     map[[2]uint64]*models.PostLike
	comments  map[uint64]*models.Comment

	nextID uint64
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uint64]*models.Users),
		follows:   make(map[[2]uint64]*models.UserFollow),
		userStats: make(map[uint64]*models.UserStats),
		posts:     make(map[uint64]*models.Post),
		postStats: make(map[uint64]*models.PostStats),
		likes:     make(map[[2]uint64]*models.PostLike),
		comments:  make(map[uint64]*models.Comment),
	}
}

func (s *memStore) genID() uint64 {
	s.nextID++
	return s.nextID
}

// Transact 测试桩：内存实现里的每个写操作本身已是原子的
func (s *memStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---- UserStore ----

func (s *memStore) FindByID(_ context.Context, id uint64) (*models.Users, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) FindByUsername(_ context.Context, username string) (*models.Users, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) ExistsByID(_ context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok, nil
}

func (s *memStore) IsUsernameExist(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) IsEmailExist(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Create(_ context.Context, user *models.Users) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = s.genID()
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memStore) UpdateByID(_ context.Context, id uint64, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	if v, ok := data["nickname"].(string); ok {
		u.Nickname = v
	}
	if v, ok := data["avatar"].(string); ok {
		u.Avatar = v
	}
	if v, ok := data["bio"].(string); ok {
		u.Bio = v
	}
	return nil
}

// ---- FollowStore ----

type followStore struct{ *memStore }

func (s *memStore) Get(_ context.Context, followerID, followeeID uint64) (*models.UserFollow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.follows[[2]uint64{followerID, followeeID}]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (s *memStore) IsFollowing(_ context.Context, followerID, followeeID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.follows[[2]uint64{followerID, followeeID}]
	return ok, nil
}

func (s *memStore) CreateFollow(_ context.Context, edge *models.UserFollow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]uint64{edge.FollowerID, edge.FolloweeID}
	if _, ok := s.follows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if edge.ID == 0 {
		edge.ID = s.genID()
	}
	cp := *edge
	s.follows[key] = &cp
	return nil
}

func (f followStore) Create(ctx context.Context, edge *models.UserFollow) error {
	return f.CreateFollow(ctx, edge)
}

func (s *memStore) Delete(_ context.Context, followerID, followeeID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]uint64{followerID, followeeID}
	if _, ok := s.follows[key]; !ok {
		return 0, nil
	}
	delete(s.follows, key)
	return 1, nil
}

func (s *memStore) ListFolloweeIDs(_ context.Context, followerID uint64) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint64
	for key := range s.follows {
		if key[0] == followerID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

func (s *memStore) CountFollowers(_ context.Context, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for key := range s.follows {
		if key[1] == userID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountFollowing(_ context.Context, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for key := range s.follows {
		if key[0] == userID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) GetFollowingList(_ context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var edges []*models.UserFollow
	for key, e := range s.follows {
		if key[0] == userID {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].CreatedAt.After(edges[j].CreatedAt)
	})
	total := int64(len(edges))
	if offset >= len(edges) {
		return nil, total, nil
	}
	edges = edges[offset:]
	if limit < len(edges) {
		edges = edges[:limit]
	}
	var out []*models.FollowingQueryResult
	for _, e := range edges {
		item := &models.FollowingQueryResult{UserID: e.FolloweeID, FollowTime: e.CreatedAt}
		if u, ok := s.users[e.FolloweeID]; ok {
			item.Username = u.Username
			item.Nickname = u.Nickname
		}
		out = append(out, item)
	}
	return out, total, nil
}

// ---- UserStatsStore ----

func (s *memStore) userStatsRow(userID uint64) *models.UserStats {
	st, ok := s.userStats[userID]
	if !ok {
		st = &models.UserStats{UserID: userID}
		s.userStats[userID] = st
	}
	return st
}

func clampAdd(cur uint32, delta int) uint32 {
	v := int64(cur) + int64(delta)
	if v < 0 {
		v = 0
	}
	return uint32(v)
}

func (s *memStore) IncrFollowerCount(_ context.Context, userID uint64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.userStatsRow(userID)
	st.FollowerCount = clampAdd(st.FollowerCount, delta)
	return nil
}

func (s *memStore) IncrFollowingCount(_ context.Context, userID uint64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.userStatsRow(userID)
	st.FollowingCount = clampAdd(st.FollowingCount, delta)
	return nil
}

func (s *memStore) IncrPostCount(_ context.Context, userID uint64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.userStatsRow(userID)
	st.PostCount = clampAdd(st.PostCount, delta)
	return nil
}

func (s *memStore) GetByUserID(_ context.Context, userID uint64) (*models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.userStats[userID]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (s *memStore) Overwrite(_ context.Context, userID uint64, followerCount, followingCount, postCount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.userStatsRow(userID)
	st.FollowerCount = uint32(followerCount)
	st.FollowingCount = uint32(followingCount)
	st.PostCount = uint32(postCount)
	return nil
}

// ---- PostStore ----

type postStore struct{ *memStore }

func (s *memStore) GetPostByID(_ context.Context, postID uint64) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok || p.Status != postStatusNormal {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (p postStore) GetByID(ctx context.Context, postID uint64) (*models.Post, error) {
	return p.GetPostByID(ctx, postID)
}

func (p postStore) ExistsByID(ctx context.Context, postID uint64) (bool, error) {
	post, err := p.GetPostByID(ctx, postID)
	return post != nil, err
}

func (p postStore) Create(_ context.Context, post *models.Post) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if post.ID == 0 {
		post.ID = p.genID()
	}
	cp := *post
	p.posts[post.ID] = &cp
	return nil
}

func (s *memStore) FindByAuthors(_ context.Context, authorIDs []uint64, limit, offset int) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	authors := make(map[uint64]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = struct{}{}
	}
	var out []*models.Post
	for _, p := range s.posts {
		if p.Status != postStatusNormal {
			continue
		}
		if _, ok := authors[p.UserID]; !ok {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if offset >= len(out) {
		return []*models.Post{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) UpdateStatus(_ context.Context, postID uint64, status int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok || p.Status == status {
		return 0, nil
	}
	p.Status = status
	return 1, nil
}

func (s *memStore) CountByUserID(_ context.Context, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, p := range s.posts {
		if p.UserID == userID && p.Status == postStatusNormal {
			n++
		}
	}
	return n, nil
}

// ---- PostStatsStore ----

func (s *memStore) postStatsRow(postID uint64) *models.PostStats {
	st, ok := s.postStats[postID]
	if !ok {
		st = &models.PostStats{PostID: postID}
		s.postStats[postID] = st
	}
	return st
}

func clampAdd64(cur, delta int64) int64 {
	v := cur + delta
	if v < 0 {
		v = 0
	}
	return v
}

func (s *memStore) IncrLikeCount(_ context.Context, postID uint64, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.postStatsRow(postID)
	st.LikeCount = clampAdd64(st.LikeCount, delta)
	return nil
}

func (s *memStore) IncrCommentCount(_ context.Context, postID uint64, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.postStatsRow(postID)
	st.CommentCount = clampAdd64(st.CommentCount, delta)
	return nil
}

func (s *memStore) GetByPostID(_ context.Context, postID uint64) (*models.PostStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.postStats[postID]
	if !ok {
		return &models.PostStats{PostID: postID}, nil
	}
	cp := *st
	return &cp, nil
}

func (s *memStore) OverwritePostStats(_ context.Context, postID uint64, likeCount, commentCount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.postStatsRow(postID)
	st.LikeCount = likeCount
	st.CommentCount = commentCount
	return nil
}

type postStatsStore struct{ *memStore }

func (p postStatsStore) Overwrite(ctx context.Context, postID uint64, likeCount, commentCount int64) error {
	return p.OverwritePostStats(ctx, postID, likeCount, commentCount)
}

// ---- LikeStore ----

type likeStore struct{ *memStore }

func (s *memStore) IsLiked(_ context.Context, postID, userID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.likes[[2]uint64{postID, userID}]
	return ok, nil
}

func (l likeStore) Create(_ context.Context, like *models.PostLike) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := [2]uint64{like.PostID, like.UserID}
	if _, ok := l.likes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if like.ID == 0 {
		like.ID = l.genID()
	}
	cp := *like
	l.likes[key] = &cp
	return nil
}

func (l likeStore) Delete(_ context.Context, postID, userID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := [2]uint64{postID, userID}
	if _, ok := l.likes[key]; !ok {
		return 0, nil
	}
	delete(l.likes, key)
	return 1, nil
}

func (l likeStore) CountByPostID(_ context.Context, postID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for key := range l.likes {
		if key[0] == postID {
			n++
		}
	}
	return n, nil
}

// ---- CommentStore ----

type commentStore struct{ *memStore }

func (c commentStore) GetByID(_ context.Context, commentID uint64) (*models.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cm, ok := c.comments[commentID]
	if !ok || cm.Status != 1 {
		return nil, nil
	}
	cp := *cm
	return &cp, nil
}

func (c commentStore) Create(_ context.Context, comment *models.Comment) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if comment.ID == 0 {
		comment.ID = c.genID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	cp := *comment
	c.comments[comment.ID] = &cp
	return nil
}

func (c commentStore) MarkDeleted(_ context.Context, commentID uint64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cm, ok := c.comments[commentID]
	if !ok || cm.Status != 1 {
		return 0, nil
	}
	cm.Status = 0
	return 1, nil
}

func (c commentStore) FindByPostID(_ context.Context, postID uint64, limit, offset int) ([]*models.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*models.Comment
	for _, cm := range c.comments {
		if cm.PostID != postID || cm.Status != 1 {
			continue
		}
		cp := *cm
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if offset >= len(out) {
		return []*models.Comment{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (c commentStore) CountByPostID(_ context.Context, postID uint64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for _, cm := range c.comments {
		if cm.PostID == postID && cm.Status == 1 {
			n++
		}
	}
	return n, nil
}

// ---- 组装 ----

type env struct {
	store   *memStore
	counter *CounterService
	follow  *FollowService
	feed    *FeedService
	like    *LikeService
	comment *CommentService
	post    *PostService
	user    *UserService
}

func newEnv() *env {
	s := newMemStore()
	counter := &CounterService{
		UserStatsDAO: s,
		PostStatsDAO: postStatsStore{s},
		FollowDAO:    followStore{s},
		PostDAO:      postStore{s},
		LikeDAO:      likeStore{s},
		CommentDAO:   commentStore{s},
	}
	return &env{
		store:   s,
		counter: counter,
		follow: &FollowService{
			UserDAO:   s,
			FollowDAO: followStore{s},
			StatsDAO:  s,
			Counter:   counter,
			Tx:        s,
		},
		feed: &FeedService{
			UserDAO:   s,
			FollowDAO: followStore{s},
			PostDAO:   postStore{s},
		},
		like: &LikeService{
			PostDAO:  postStore{s},
			LikeDAO:  likeStore{s},
			StatsDAO: postStatsStore{s},
			Counter:  counter,
			Tx:       s,
		},
		comment: &CommentService{
			PostDAO:    postStore{s},
			CommentDAO: commentStore{s},
			StatsDAO:   postStatsStore{s},
			Counter:    counter,
			Tx:         s,
		},
		post: &PostService{
			UserDAO:  s,
			PostDAO:  postStore{s},
			StatsDAO: postStatsStore{s},
			Counter:  counter,
			Tx:       s,
		},
		user: &UserService{
			UserDAO:  s,
			StatsDAO: s,
		},
	}
}

// addUser 直接种入用户
func (e *env) addUser(id uint64, username string) {
	e.store.users[id] = &models.Users{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
	}
	if id > e.store.nextID {
		e.store.nextID = id
	}
}

// addPost 直接种入帖子（用于 feed 测试控制时间戳）
func (e *env) addPost(id, userID uint64, createdAt time.Time) {
	e.store.posts[id] = &models.Post{
		ID:        id,
		UserID:    userID,
		Caption:   "post",
		Status:    postStatusNormal,
		CreatedAt: createdAt,
	}
	if id > e.store.nextID {
		e.store.nextID = id
	}
}
