//go:build wireinject
// +build wireinject

package app

import (
	"context"

	logGateway "parceltrack/internal/gateway/log/notification"
	"parceltrack/internal/handlers/tasks/overdue_scan"
	"parceltrack/internal/pkg/config"
	"parceltrack/internal/pkg/factory/delivery_estimate"
	"parceltrack/internal/pkg/factory/tracking_id"
	kafkainfra "parceltrack/internal/pkg/kafka"

	"parceltrack/internal/entities"
	agentRepo "parceltrack/internal/repository/agent"
	eventRepo "parceltrack/internal/repository/event"
	parcelRepo "parceltrack/internal/repository/parcel"
	userRepo "parceltrack/internal/repository/user"
	agentService "parceltrack/internal/service/agent"
	assignmentService "parceltrack/internal/service/assignment"
	notificationService "parceltrack/internal/service/notification"
	parcelService "parceltrack/internal/service/parcel"
	transitionService "parceltrack/internal/service/transition"
	userService "parceltrack/internal/service/user"

	"parceltrack/pkg/eventbus"
	"parceltrack/pkg/keylock"
	"parceltrack/pkg/logger"
	"parceltrack/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafkainfra.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideParcelLocker,
		provideEventsTopic,
		provideParcelLockWait,
		provideOverdueScanInterval,
		provideOverdueScanLookback,

		provideUserRepository,
		provideAgentRepository,
		provideParcelRepository,
		provideEventRepository,

		provideNotificationGateway,
		provideEventBus,

		provideServiceUser,
		provideServiceAgent,
		provideServiceParcel,
		provideServiceTransition,
		provideServiceAssignment,
		tracking_id.New,
		delivery_estimate.New,

		provideOverdueScanTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceAgent), new(*agentService.Agent)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceTransition), new(*transitionService.Engine)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),
		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(parcelService.UserService), new(*userService.User)),
		wire.Bind(new(parcelService.TrackingFactory), new(*tracking_id.TrackingIDFactory)),
		wire.Bind(new(parcelService.DeliveryEstimateFactory), new(*delivery_estimate.DeliveryEstimateFactory)),
		wire.Bind(new(parcelService.EventPublisher), new(*eventbus.Bus[entities.DomainEvent])),

		wire.Bind(new(transitionService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(transitionService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(transitionService.ParcelLocker), new(*keylock.KeyLock)),
		wire.Bind(new(transitionService.TxManager), new(*tx.Manager)),
		wire.Bind(new(transitionService.EventPublisher), new(*eventbus.Bus[entities.DomainEvent])),

		wire.Bind(new(assignmentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(assignmentService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(assignmentService.ParcelLocker), new(*keylock.KeyLock)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.EventPublisher), new(*eventbus.Bus[entities.DomainEvent])),

		wire.Bind(new(overdue_scan.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notification)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideUserRepository,
		provideAgentRepository,

		provideServiceUser,
		provideServiceAgent,
		provideLogSender,
		provideNotificationService,

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),

		wire.Bind(new(notificationService.UserService), new(*userService.User)),
		wire.Bind(new(notificationService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(notificationService.Sender), new(*logGateway.Sender)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
