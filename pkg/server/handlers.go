package server

import (
	"Pulse/handler"
)

type Handlers struct {
	User    *handler.User
	Follow  *handler.Follow
	Post    *handler.Post
	Comment *handler.Comment
}
