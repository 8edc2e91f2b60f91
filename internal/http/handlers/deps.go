package handlers

import (
	"usersvc/internal/repos"
	"usersvc/internal/services"
)

type Deps struct {
	UserHandler   *UserHandler
	HealthHandler *HealthHandler
}

func NewDeps(gw *repos.Gateway) *Deps {
	userRepo := repos.NewUserRepo(gw)
	userSvc := services.NewUserService(userRepo)

	return &Deps{
		UserHandler:   &UserHandler{Users: userSvc},
		HealthHandler: &HealthHandler{Store: gw},
	}
}
