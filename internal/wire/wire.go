//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"github.com/google/wire"

	"cineplan-api/internal/application/aiplan"
	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/config"
	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/infrastructure/llm"
	"cineplan-api/internal/infrastructure/persistence/postgres"
	"cineplan-api/internal/infrastructure/persistence/redis"
	"cineplan-api/internal/interfaces/http/handler"
	"cineplan-api/internal/interfaces/http/middleware"
	"cineplan-api/internal/interfaces/http/router"
	workflowport "cineplan-api/internal/workflow/port"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RepoSet,
		RedisSet,
		SchedulingSet,
		RouterSet,
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewTxManager,
	postgres.NewProjectRepository,
	postgres.NewSceneRepository,
	postgres.NewLocationRepository,
	postgres.NewCharacterRepository,
	postgres.NewDistanceRepository,
	postgres.NewPlanRepository,
)

// RepoSet 整合了具体实现与接口绑定的集合
var RepoSet = wire.NewSet(
	PostgresSet,
	// 接口绑定
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
	wire.Bind(new(repository.ProjectRepository), new(*postgres.ProjectRepository)),
	wire.Bind(new(repository.SceneRepository), new(*postgres.SceneRepository)),
	wire.Bind(new(repository.LocationRepository), new(*postgres.LocationRepository)),
	wire.Bind(new(repository.CharacterRepository), new(*postgres.CharacterRepository)),
	wire.Bind(new(repository.DistanceRepository), new(*postgres.DistanceRepository)),
	wire.Bind(new(repository.PlanRepository), new(*postgres.PlanRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(schedule.PlanCache), new(*redis.Cache)),
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
)

// SchedulingSet 排期服务提供者集合
var SchedulingSet = wire.NewSet(
	ProvideSchedulerConfig,
	llm.NewEinoFactory,
	wire.Bind(new(workflowport.ChatModelFactory), new(*llm.EinoFactory)),
	schedule.NewPlanner,
	aiplan.NewGenerator,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewProjectHandler,
	handler.NewSceneHandler,
	handler.NewLocationHandler,
	handler.NewCharacterHandler,
	handler.NewDistanceHandler,
	handler.NewPlanHandler,
	router.New,
)

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideSchedulerConfig 提供排期配置
func ProvideSchedulerConfig(cfg *config.Config) config.SchedulerConfig {
	return cfg.Scheduler
}
