package i

import (
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
