package parcel

import (
	"parceltrack/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:         p.ID,
		TrackingID: p.TrackingID,
		CustomerID: p.CustomerID,
		AgentID:    p.AgentID,
		Pickup: entities.ContactPoint{
			Name:    p.PickupName,
			Phone:   p.PickupPhone,
			Address: p.PickupAddress,
			City:    p.PickupCity,
			Pincode: p.PickupPincode,
		},
		Delivery: entities.ContactPoint{
			Name:    p.DeliveryName,
			Phone:   p.DeliveryPhone,
			Address: p.DeliveryAddress,
			City:    p.DeliveryCity,
			Pincode: p.DeliveryPincode,
		},
		Category:          entities.ParcelCategoryType(p.Category),
		WeightKg:          p.WeightKg,
		DeclaredValue:     p.DeclaredValue,
		Description:       p.Description,
		Fragile:           p.Fragile,
		Urgent:            p.Urgent,
		PaymentMode:       entities.PaymentModeType(p.PaymentMode),
		CODAmount:         p.CODAmount,
		Status:            entities.ParcelStatusType(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		PickedUpAt:        p.PickedUpAt,
		DeliveredAt:       p.DeliveredAt,
		EstimatedDelivery: p.EstimatedDelivery,
	}
}

func FromDomain(p *entities.Parcel) *ParcelDB {
	if p == nil {
		return nil
	}

	return &ParcelDB{
		ID:                p.ID,
		TrackingID:        p.TrackingID,
		CustomerID:        p.CustomerID,
		AgentID:           p.AgentID,
		PickupName:        p.Pickup.Name,
		PickupPhone:       p.Pickup.Phone,
		PickupAddress:     p.Pickup.Address,
		PickupCity:        p.Pickup.City,
		PickupPincode:     p.Pickup.Pincode,
		DeliveryName:      p.Delivery.Name,
		DeliveryPhone:     p.Delivery.Phone,
		DeliveryAddress:   p.Delivery.Address,
		DeliveryCity:      p.Delivery.City,
		DeliveryPincode:   p.Delivery.Pincode,
		Category:          p.Category.String(),
		WeightKg:          p.WeightKg,
		DeclaredValue:     p.DeclaredValue,
		Description:       p.Description,
		Fragile:           p.Fragile,
		Urgent:            p.Urgent,
		PaymentMode:       p.PaymentMode.String(),
		CODAmount:         p.CODAmount,
		Status:            p.Status.String(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		PickedUpAt:        p.PickedUpAt,
		DeliveredAt:       p.DeliveredAt,
		EstimatedDelivery: p.EstimatedDelivery,
	}
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
