package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/orchestrators/navigation"
)

// HandlerConfig holds dependencies for the pathing handler
type HandlerConfig struct {
	Service navigation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Service == nil {
		return errors.InvalidArgument("navigation service is required")
	}
	return nil
}

// Handler implements PathingServiceServer on top of the navigation
// orchestrator.
type Handler struct {
	service navigation.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
	}, nil
}

var _ PathingServiceServer = (*Handler)(nil)

// CreateLevel creates a level.
//
//	request:  {width, height, cell_size?, offset_x?, offset_z?, terrain_rows?,
//	           mountains?: [{center_x, center_y, radius}],
//	           hills?: [{center_x, center_y, radius, entrances?: [{x, y}]}]}
//	response: {level}
func (h *Handler) CreateLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.CreateLevelInput{
		Width:       f.int("width"),
		Height:      f.int("height"),
		CellSize:    f.number("cell_size"),
		OffsetX:     f.number("offset_x"),
		OffsetZ:     f.number("offset_z"),
		TerrainRows: f.strings("terrain_rows"),
		Mountains:   f.mountains("mountains"),
		Hills:       f.hills("hills"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	output, err := h.service.CreateLevel(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"level": encodeLevel(output.Level)})
}

// GetLevel returns a level.
//
//	request:  {level_id}
//	response: {level}
func (h *Handler) GetLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	levelID := f.requiredString("level_id")
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	output, err := h.service.GetLevel(ctx, &navigation.GetLevelInput{LevelID: levelID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"level": encodeLevel(output.Level)})
}

// DeleteLevel removes a level and stops its pathfinder.
//
//	request:  {level_id}
//	response: {}
func (h *Handler) DeleteLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	levelID := f.requiredString("level_id")
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	if _, err := h.service.DeleteLevel(ctx, &navigation.DeleteLevelInput{LevelID: levelID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// ListLevels returns the stored level ids.
//
//	request:  {}
//	response: {level_ids}
func (h *Handler) ListLevels(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.service.ListLevels(ctx, &navigation.ListLevelsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	ids := make([]any, len(output.LevelIDs))
	for i, id := range output.LevelIDs {
		ids[i] = id
	}
	return respond(map[string]any{"level_ids": ids})
}

// FindPath runs a blocking search.
//
//	request:  {level_id, start: {x, y}, end: {x, y}}
//	response: {path: [{x, y}]}
func (h *Handler) FindPath(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.FindPathInput{
		LevelID: f.requiredString("level_id"),
		Start:   f.point("start"),
		End:     f.point("end"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	output, err := h.service.FindPath(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"path": encodePath(output.Path)})
}

// SubmitPathRequest queues a search under a caller-chosen id.
//
//	request:  {level_id, request_id, start: {x, y}, end: {x, y}}
//	response: {}
func (h *Handler) SubmitPathRequest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.SubmitPathRequestInput{
		LevelID:   f.requiredString("level_id"),
		RequestID: f.requestID("request_id"),
		Start:     f.point("start"),
		End:       f.point("end"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	if _, err := h.service.SubmitPathRequest(ctx, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// FetchCompletedPaths drains finished caller requests.
//
//	request:  {level_id}
//	response: {results: [{request_id, path}]}
func (h *Handler) FetchCompletedPaths(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	levelID := f.requiredString("level_id")
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	output, err := h.service.FetchCompletedPaths(ctx, &navigation.FetchCompletedPathsInput{LevelID: levelID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	results := make([]any, len(output.Results))
	for i, result := range output.Results {
		results[i] = map[string]any{
			"request_id": encodeRequestID(result.RequestID),
			"path":       encodePath(result.Path),
		}
	}
	return respond(map[string]any{"results": results})
}

// SetObstacle blocks or clears one cell until the next obstacle rebuild.
//
//	request:  {level_id, x, y, blocked}
//	response: {}
func (h *Handler) SetObstacle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.SetObstacleInput{
		LevelID: f.requiredString("level_id"),
		X:       f.int("x"),
		Y:       f.int("y"),
		Blocked: f.bool("blocked"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	if _, err := h.service.SetObstacle(ctx, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// PlaceBuilding registers a building footprint.
//
//	request:  {level_id, building: {id, center_x, center_z, width, depth}}
//	response: {}
func (h *Handler) PlaceBuilding(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.PlaceBuildingInput{
		LevelID:   f.requiredString("level_id"),
		Footprint: f.footprint("building"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	if _, err := h.service.PlaceBuilding(ctx, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// RemoveBuilding unregisters a building.
//
//	request:  {level_id, building_id}
//	response: {}
func (h *Handler) RemoveBuilding(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.RemoveBuildingInput{
		LevelID:    f.requiredString("level_id"),
		BuildingID: f.requiredString("building_id"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	if _, err := h.service.RemoveBuilding(ctx, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// RequestUnitMove asks for a route for one unit.
//
//	request:  {level_id, unit_id, position: {x, z}, target: {x, z}, allow_direct_fallback?}
//	response: {request_id, direct, target: {x, z}}
func (h *Handler) RequestUnitMove(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.RequestUnitMoveInput{
		LevelID:             f.requiredString("level_id"),
		UnitID:              f.requiredString("unit_id"),
		Position:            f.worldCell("position"),
		Target:              f.worldCell("target"),
		AllowDirectFallback: f.bool("allow_direct_fallback"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	output, err := h.service.RequestUnitMove(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"request_id": encodeRequestID(output.RequestID),
		"direct":     output.Direct,
		"target":     encodeWorldCell(output.Target),
	})
}

// CollectUnitPaths returns routes for unit moves whose searches finished.
//
//	request:  {level_id, positions?: {unit_id: {x, z}}}
//	response: {routes: [{unit_id, request_id, waypoints, target, has_target}]}
func (h *Handler) CollectUnitPaths(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &navigation.CollectUnitPathsInput{
		LevelID:   f.requiredString("level_id"),
		Positions: f.worldCells("positions"),
	}
	if f.err != nil {
		return nil, errors.ToGRPCError(f.err)
	}

	output, err := h.service.CollectUnitPaths(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	routes := make([]any, len(output.Routes))
	for i, route := range output.Routes {
		routes[i] = encodeRoute(route)
	}
	return respond(map[string]any{"routes": routes})
}

func respond(m map[string]any) (*structpb.Struct, error) {
	s, err := toStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}
