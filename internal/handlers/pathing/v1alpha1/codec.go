package v1alpha1

import (
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Esderin/Standard-of-Iron/internal/buildings"
	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/orchestrators/navigation"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
	"github.com/Esderin/Standard-of-Iron/internal/terrain"
)

// fields reads typed values out of a request Struct. The first decoding
// problem is kept in err and later reads become no-ops.
type fields struct {
	m      map[string]*structpb.Value
	prefix string
	err    error
}

func newFields(s *structpb.Struct) *fields {
	if s == nil {
		return &fields{m: map[string]*structpb.Value{}}
	}
	return &fields{m: s.GetFields()}
}

func (f *fields) fail(field, reason string) {
	if f.err == nil {
		name := f.prefix + field
		f.err = errors.InvalidArgumentf("%s %s", name, reason).WithMeta("field", name)
	}
}

func (f *fields) string(key string) string {
	v, ok := f.m[key]
	if !ok || f.err != nil {
		return ""
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		f.fail(key, "must be a string")
		return ""
	}
	return s.StringValue
}

func (f *fields) requiredString(key string) string {
	s := f.string(key)
	if s == "" {
		f.fail(key, "is required")
	}
	return s
}

func (f *fields) number(key string) float64 {
	v, ok := f.m[key]
	if !ok || f.err != nil {
		return 0
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		f.fail(key, "must be a number")
		return 0
	}
	return n.NumberValue
}

func (f *fields) int(key string) int {
	n := f.number(key)
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		f.fail(key, "must be an integer")
		return 0
	}
	return int(n)
}

func (f *fields) bool(key string) bool {
	v, ok := f.m[key]
	if !ok || f.err != nil {
		return false
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		f.fail(key, "must be a bool")
		return false
	}
	return b.BoolValue
}

// requestID accepts a decimal string or a whole number. Strings are the only
// lossless form for ids above 2^53.
func (f *fields) requestID(key string) uint64 {
	v, ok := f.m[key]
	if !ok || f.err != nil {
		f.fail(key, "is required")
		return 0
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		id, err := strconv.ParseUint(kind.StringValue, 10, 64)
		if err != nil {
			f.fail(key, "must be an unsigned integer")
			return 0
		}
		return id
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n < 0 || n != math.Trunc(n) || n > 1<<53 {
			f.fail(key, "must be an unsigned integer")
			return 0
		}
		return uint64(n)
	default:
		f.fail(key, "must be a string or number")
		return 0
	}
}

func (f *fields) object(key string) *fields {
	nested := &fields{m: map[string]*structpb.Value{}, prefix: f.prefix + key + ".", err: f.err}
	v, ok := f.m[key]
	if !ok || f.err != nil {
		return nested
	}
	s, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		f.fail(key, "must be an object")
		nested.err = f.err
		return nested
	}
	nested.m = s.StructValue.GetFields()
	return nested
}

// child folds a nested reader's error back into f.
func (f *fields) child(nested *fields) {
	if f.err == nil {
		f.err = nested.err
	}
}

func (f *fields) strings(key string) []string {
	v, ok := f.m[key]
	if !ok || f.err != nil {
		return nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		f.fail(key, "must be a list")
		return nil
	}
	out := make([]string, 0, len(list.ListValue.GetValues()))
	for _, item := range list.ListValue.GetValues() {
		s, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok {
			f.fail(key, "must be a list of strings")
			return nil
		}
		out = append(out, s.StringValue)
	}
	return out
}

// objects returns a reader per element of a list of objects. Element errors
// are reported as key[i].field.
func (f *fields) objects(key string) []*fields {
	v, ok := f.m[key]
	if !ok || f.err != nil {
		return nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		f.fail(key, "must be a list")
		return nil
	}
	out := make([]*fields, 0, len(list.ListValue.GetValues()))
	for i, item := range list.ListValue.GetValues() {
		s, ok := item.GetKind().(*structpb.Value_StructValue)
		if !ok {
			f.fail(key, "must be a list of objects")
			return nil
		}
		out = append(out, &fields{
			m:      s.StructValue.GetFields(),
			prefix: f.prefix + key + "[" + strconv.Itoa(i) + "].",
		})
	}
	return out
}

func (f *fields) hills(key string) []terrain.HillFeature {
	var out []terrain.HillFeature
	for _, nested := range f.objects(key) {
		hill := terrain.HillFeature{
			CenterX: nested.int("center_x"),
			CenterY: nested.int("center_y"),
			Radius:  nested.number("radius"),
		}
		for _, entrance := range nested.objects("entrances") {
			hill.Entrances = append(hill.Entrances, [2]int{entrance.int("x"), entrance.int("y")})
			nested.child(entrance)
		}
		f.child(nested)
		out = append(out, hill)
	}
	return out
}

func (f *fields) mountains(key string) []terrain.MountainFeature {
	var out []terrain.MountainFeature
	for _, nested := range f.objects(key) {
		out = append(out, terrain.MountainFeature{
			CenterX: nested.int("center_x"),
			CenterY: nested.int("center_y"),
			Radius:  nested.number("radius"),
		})
		f.child(nested)
	}
	return out
}

func (f *fields) point(key string) pathfinding.Point {
	nested := f.object(key)
	p := pathfinding.Point{X: nested.int("x"), Y: nested.int("y")}
	f.child(nested)
	return p
}

func (f *fields) worldCell(key string) pathfinding.WorldCell {
	nested := f.object(key)
	c := pathfinding.WorldCell{X: nested.number("x"), Z: nested.number("z")}
	f.child(nested)
	return c
}

func (f *fields) worldCells(key string) map[string]pathfinding.WorldCell {
	nested := f.object(key)
	if len(nested.m) == 0 {
		f.child(nested)
		return nil
	}
	out := make(map[string]pathfinding.WorldCell, len(nested.m))
	for unitID := range nested.m {
		out[unitID] = nested.worldCell(unitID)
	}
	f.child(nested)
	return out
}

func (f *fields) footprint(key string) buildings.Footprint {
	nested := f.object(key)
	fp := buildings.Footprint{
		ID:      nested.requiredString("id"),
		CenterX: nested.number("center_x"),
		CenterZ: nested.number("center_z"),
		Width:   nested.number("width"),
		Depth:   nested.number("depth"),
	}
	f.child(nested)
	return fp
}

// Response encoding. Values are built as JSON-like maps and converted once.

func toStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}

func encodePoint(p pathfinding.Point) map[string]any {
	return map[string]any{"x": p.X, "y": p.Y}
}

func encodePath(path []pathfinding.Point) []any {
	out := make([]any, len(path))
	for i, p := range path {
		out[i] = encodePoint(p)
	}
	return out
}

func encodeWorldCell(c pathfinding.WorldCell) map[string]any {
	return map[string]any{"x": c.X, "z": c.Z}
}

func encodeRequestID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func encodeFootprint(fp buildings.Footprint) map[string]any {
	return map[string]any{
		"id":       fp.ID,
		"center_x": fp.CenterX,
		"center_z": fp.CenterZ,
		"width":    fp.Width,
		"depth":    fp.Depth,
	}
}

func encodeLevel(l *navigation.Level) map[string]any {
	rows := make([]any, len(l.TerrainRows))
	for i, row := range l.TerrainRows {
		rows[i] = row
	}
	footprints := make([]any, len(l.Buildings))
	for i, fp := range l.Buildings {
		footprints[i] = encodeFootprint(fp)
	}
	return map[string]any{
		"id":           l.ID,
		"width":        l.Width,
		"height":       l.Height,
		"cell_size":    l.CellSize,
		"offset_x":     l.OffsetX,
		"offset_z":     l.OffsetZ,
		"terrain_rows": rows,
		"buildings":    footprints,
		"created_at":   l.CreatedAt.Format(time.RFC3339),
		"updated_at":   l.UpdatedAt.Format(time.RFC3339),
	}
}

func encodeRoute(r navigation.UnitRoute) map[string]any {
	waypoints := make([]any, len(r.Waypoints))
	for i, w := range r.Waypoints {
		waypoints[i] = encodeWorldCell(w)
	}
	return map[string]any{
		"unit_id":    r.UnitID,
		"request_id": encodeRequestID(r.RequestID),
		"waypoints":  waypoints,
		"target":     encodeWorldCell(r.Target),
		"has_target": r.HasTarget,
	}
}
