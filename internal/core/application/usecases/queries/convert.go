package queries

import (
	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func toCargoTypes(codes pq.Int64Array) []item.CargoType {
	tags := make([]item.CargoType, 0, len(codes))
	for _, c := range codes {
		tags = append(tags, item.CargoType(c))
	}
	return tags
}
