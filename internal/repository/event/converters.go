package event

import (
	"parceltrack/internal/entities"
)

func FromDomain(event *entities.StatusEvent) *StatusEventDB {
	model := &StatusEventDB{
		ID:         event.ID,
		ParcelID:   event.ParcelID,
		FromStatus: string(event.FromStatus),
		ToStatus:   string(event.ToStatus),
		ActorID:    event.ActorID,
		Notes:      event.Notes,
		ProofRef:   event.ProofRef,
		CreatedAt:  event.CreatedAt,
	}

	if event.Location != nil {
		model.LocationLat = &event.Location.Lat
		model.LocationLng = &event.Location.Lng
		model.LocationAddress = &event.Location.Address
	}

	return model
}

func ToDomain(model *StatusEventDB) *entities.StatusEvent {
	event := &entities.StatusEvent{
		ID:         model.ID,
		ParcelID:   model.ParcelID,
		FromStatus: entities.ParcelStatusType(model.FromStatus),
		ToStatus:   entities.ParcelStatusType(model.ToStatus),
		ActorID:    model.ActorID,
		Notes:      model.Notes,
		ProofRef:   model.ProofRef,
		CreatedAt:  model.CreatedAt,
	}

	if model.LocationLat != nil && model.LocationLng != nil {
		event.Location = &entities.GeoPoint{
			Lat: *model.LocationLat,
			Lng: *model.LocationLng,
		}
		if model.LocationAddress != nil {
			event.Location.Address = *model.LocationAddress
		}
	}

	return event
}
