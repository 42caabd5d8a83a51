package http

import (
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAPIUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toAPIUUIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := toAPIUUID(*id)
	return &u
}

func toCargoTypes(codes *[]int) []item.CargoType {
	if codes == nil {
		return nil
	}
	tags := make([]item.CargoType, 0, len(*codes))
	for _, c := range *codes {
		tags = append(tags, item.CargoType(c))
	}
	return tags
}

func toAPICells(cells []*station.Cell) []servers.Cell {
	out := make([]servers.Cell, 0, len(cells))
	for _, c := range cells {
		out = append(out, servers.Cell{
			Id:      toAPIUUID(c.ID()),
			Name:    c.Name(),
			TableId: toAPIUUIDPtr(c.Table()),
		})
	}
	return out
}

func toAPIOrderDetails(o queries.GetOrderDetailsQueryResponse) servers.OrderDetails {
	resp := servers.OrderDetails{
		Id:                   toAPIUUID(o.ID),
		Status:               servers.OrderDetailsStatus(o.Status),
		CreatedAt:            o.CreatedAt,
		WorkerId:             toAPIUUIDPtr(o.WorkerID),
		RecommendedPackaging: o.RecommendedPackaging,
		SelectedPackaging:    o.SelectedPackaging,
		TotalPackages:        o.TotalPackages,
		Lines:                make([]servers.OrderDetailsLine, 0, len(o.Lines)),
		Placements:           make([]servers.CellPlacement, 0, len(o.Placements)),
		Cells:                make([]servers.Cell, 0, len(o.Cells)),
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, servers.OrderDetailsLine{
			ItemId:        toAPIUUID(l.ItemID),
			ItemName:      l.ItemName,
			Quantity:      l.Quantity,
			Placed:        l.Placed,
			PackageNumber: l.PackageNumber,
			Hints:         l.Hint.Labels(),
		})
	}
	for _, p := range o.Placements {
		resp.Placements = append(resp.Placements, servers.CellPlacement{
			CellId:   toAPIUUID(p.CellID),
			ItemId:   toAPIUUID(p.ItemID),
			Quantity: p.Quantity,
		})
	}
	for _, c := range o.Cells {
		resp.Cells = append(resp.Cells, servers.Cell{
			Id:      toAPIUUID(c.ID),
			Name:    c.Name,
			TableId: toAPIUUIDPtr(c.TableID),
		})
	}
	return resp
}
