package app

import (
	agent_get "parceltrack/internal/handlers/rest/agent_get"
	agent_post "parceltrack/internal/handlers/rest/agent_post"
	agent_put "parceltrack/internal/handlers/rest/agent_put"
	agents_get "parceltrack/internal/handlers/rest/agents_get"
	parcel_assign_bulk_post "parceltrack/internal/handlers/rest/parcel_assign_bulk_post"
	parcel_assign_post "parceltrack/internal/handlers/rest/parcel_assign_post"
	parcel_get "parceltrack/internal/handlers/rest/parcel_get"
	parcel_history_get "parceltrack/internal/handlers/rest/parcel_history_get"
	parcel_post "parceltrack/internal/handlers/rest/parcel_post"
	parcel_status_post "parceltrack/internal/handlers/rest/parcel_status_post"
	parcel_track_get "parceltrack/internal/handlers/rest/parcel_track_get"
	parcel_unassign_post "parceltrack/internal/handlers/rest/parcel_unassign_post"
	parcels_get "parceltrack/internal/handlers/rest/parcels_get"
	user_post "parceltrack/internal/handlers/rest/user_post"
	users_get "parceltrack/internal/handlers/rest/users_get"

	notificationService "parceltrack/internal/service/notification"
	"parceltrack/pkg/background"
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceAgent      ServiceAgent
	ServiceParcel     ServiceParcel
	ServiceTransition ServiceTransition
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	user_post.Service
	users_get.Service
}

type ServiceAgent interface {
	agent_post.Service
	agent_get.Service
	agent_put.Service
	agents_get.Service
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_get.Service
	parcel_track_get.Service
	parcels_get.Service
	parcel_history_get.Service
}

type ServiceTransition interface {
	parcel_status_post.Service
}

type ServiceAssignment interface {
	parcel_assign_post.Service
	parcel_assign_bulk_post.Service
	parcel_unassign_post.Service
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}
