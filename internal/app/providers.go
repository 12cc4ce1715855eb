package app

import (
	"context"
	"time"

	kafkaGateway "parceltrack/internal/gateway/kafka/notification"
	logGateway "parceltrack/internal/gateway/log/notification"
	"parceltrack/internal/handlers/tasks/overdue_scan"
	"parceltrack/internal/pkg/config"
	"parceltrack/internal/pkg/factory/notification_handle"
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

	"parceltrack/pkg/background"
	"parceltrack/pkg/eventbus"
	"parceltrack/pkg/keylock"
	"parceltrack/pkg/logger"
	"parceltrack/pkg/querier"
	"parceltrack/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueScanInterval time.Duration
	OverdueScanLookback time.Duration
	ParcelLockWait      time.Duration
	EventsTopic         string
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

func provideParcelLocker() *keylock.KeyLock {
	return keylock.New()
}

func provideEventsTopic(cfg *config.Config) EventsTopic {
	return EventsTopic(cfg.Kafka.Topic)
}

func provideParcelLockWait(cfg *config.Config) ParcelLockWait {
	return ParcelLockWait(cfg.Locks.ParcelWait)
}

func provideOverdueScanInterval(cfg *config.Config) OverdueScanInterval {
	return OverdueScanInterval(cfg.Tasks.OverdueScanInterval)
}

func provideOverdueScanLookback(cfg *config.Config) OverdueScanLookback {
	return OverdueScanLookback(cfg.Tasks.OverdueScanLookback)
}

func provideNotificationGateway(producer *kafkainfra.Producer, topic EventsTopic) *kafkaGateway.Gateway {
	return kafkaGateway.New(producer, string(topic))
}

// provideEventBus поднимает внутрипроцессную шину и подписывает на нее
// Kafka-гейтвей: каждое доменное событие уходит в parcel.events.
func provideEventBus(log logger.Logger, gateway *kafkaGateway.Gateway) *eventbus.Bus[entities.DomainEvent] {
	bus := eventbus.New[entities.DomainEvent](log)
	bus.Subscribe(gateway.Publish)
	return bus
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceAgent(repository agentService.Repository) *agentService.Agent {
	return agentService.New(repository)
}

func provideServiceParcel(
	repository parcelService.Repository,
	eventRepository parcelService.EventRepository,
	users parcelService.UserService,
	trackingFactory parcelService.TrackingFactory,
	estimateFactory parcelService.DeliveryEstimateFactory,
	publisher parcelService.EventPublisher,
) *parcelService.Parcel {
	return parcelService.New(
		repository,
		eventRepository,
		users,
		trackingFactory,
		estimateFactory,
		publisher,
	)
}

func provideServiceTransition(
	repository transitionService.Repository,
	eventRepository transitionService.EventRepository,
	locks transitionService.ParcelLocker,
	txManager transitionService.TxManager,
	publisher transitionService.EventPublisher,
	lockWait ParcelLockWait,
) *transitionService.Engine {
	return transitionService.New(
		repository,
		eventRepository,
		locks,
		txManager,
		publisher,
		time.Duration(lockWait),
	)
}

func provideServiceAssignment(
	parcelRepository assignmentService.ParcelRepository,
	agentRepository assignmentService.AgentRepository,
	locks assignmentService.ParcelLocker,
	txManager assignmentService.TxManager,
	publisher assignmentService.EventPublisher,
	lockWait ParcelLockWait,
) *assignmentService.Assignment {
	return assignmentService.New(
		parcelRepository,
		agentRepository,
		locks,
		txManager,
		publisher,
		time.Duration(lockWait),
	)
}

func provideLogSender(log logger.Logger) *logGateway.Sender {
	return logGateway.NewSender(log)
}

// notifierProxy разрывает цикл сервис <-> фабрика обработчиков: фабрика
// получает прокси, цель подставляется после создания сервиса.
type notifierProxy struct {
	notificationService.EventNotifier
}

func provideNotificationService(
	users notificationService.UserService,
	agents notificationService.AgentService,
	sender notificationService.Sender,
) *notificationService.Service {
	proxy := &notifierProxy{}

	svc := notificationService.New(users, agents, sender, notification_handle.New(proxy))
	proxy.EventNotifier = svc

	return svc
}

func provideOverdueScanTask(
	parcels overdue_scan.Service,
	interval OverdueScanInterval,
	lookback OverdueScanLookback,
) *overdue_scan.OverdueScan {
	return overdue_scan.NewOverdueScan(parcels, time.Duration(interval), time.Duration(lookback))
}

func provideTaskList(
	overdueScanTask *overdue_scan.OverdueScan,
) []background.Task {
	return []background.Task{
		overdueScanTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
