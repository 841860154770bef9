package conceptdesign

import (
	"encoding/json"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
)

// Model identifiers understood by the CAD backend.
const (
	ModelDoubleSkid = 0
	ModelMultiLeg   = 1
	ModelLinkage    = 2
)

var doubleSkidParams = map[string]any{
	"MAX_ANGLERADIANS":              90,
	"MAX_BEAMNUM":                   5,
	"absolute_tolerance":            0.001,
	"angle_tolerance_degrees":       1.0,
	"local_blending":                true,
	"cap_mode":                      "Round",
	"fit_rail":                      true,
	"is_smooth":                     0,
	"smooth_point_count":            200,
	"smooth_degree":                 4,
	"skid_length":                   300,
	"skid_arc_radius_1":             140,
	"skid_arc_angleRadians_1":       20,
	"skid_arc_radius_2":             80,
	"skid_arc_angleRadians_2":       50,
	"is_skid_pipe":                  1,
	"skid_pipe_radius":              4,
	"is_skid_shell":                 0,
	"skid_pipe_thickness":           2,
	"is_skid_connected":             0,
	"skid_bridge_radius_AtStart":    4,
	"skid_bridge_height_AtStart":    30,
	"skid_bridge_ext_angle_AtStart": 50,
	"connect_reverse":               1,
	"skid_bridge_radius_AtEnd":      4,
	"skid_bridge_height_AtEnd":      30,
	"skid_bridge_ext_angle_AtEnd":   50,
	"skid_width":                    20,
	"skid_thickness":                10,
	"skid_distance":                 160,
	"beam_length":                   40,
	"beam_height":                   80,
	"beam_radius":                   4,
	"beam_number":                   4,
	"beam_start_X":                  -100,
	"beam_end_X":                    100,
	"is_beam_pipe":                  1,
	"beam_pipe_radius":              4,
	"is_beam_shell":                 0,
	"beam_pipe_thickness":           2,
	"plat_length":                   100,
	"plat_width":                    80,
	"plat_thickness":                10,
	"is_plat_corner":                1,
	"plat_radius":                   20,
}

var multiLegParams = map[string]any{
	"MAX_ANGLERADIANS":        90,
	"MAX_LEGNUM":              5,
	"absolute_tolerance":      0.001,
	"angle_tolerance_degrees": 1.0,
	"local_blending":          true,
	"cap_mode":                "Flat",
	"fit_rail":                true,
	"is_smooth":               0,
	"smooth_point_count":      200,
	"smooth_degree":           4,
	"global_offset":           0.05,
	"is_curve_else_rod":       1,
	"leg_angle":               90,
	"leg_radius":              4,
	"curve_radius":            180,
	"leg_height":              80,
	"foot_thickness":          20,
	"foot_radius":             6,
	"leg_number":              3,
	"leg_distance_to_center":  20,
	"leg_rotate":              0,
	"plat_length":             100,
	"plat_width":              80,
	"plat_thickness":          10,
	"is_plat_corner":          2,
	"plat_radius":             20,
}

var linkageParams = map[string]any{
	"MAX_ANGLERADIANS":          90,
	"MAX_LEGNUM":                4,
	"absolute_tolerance":        0.001,
	"angle_tolerance_degrees":   1.0,
	"local_blending":            true,
	"cap_mode":                  "Flat",
	"fit_rail":                  true,
	"is_smooth":                 0,
	"smooth_point_count":        200,
	"smooth_degree":             4,
	"global_offset":             0.05,
	"is_hinge":                  1,
	"hinge_start_height":        40,
	"hinge_radius":              1,
	"hinge_leg_distance_AtPlat": 40,
	"leg_number":                4,
	"leg_rotate_offset":         0,
	"leg_distance_to_center":    30,
	"is_leg_pipe":               0,
	"leg_radius":                2,
	"leg_height":                80,
	"leg_side_length":           2,
	"leg_angle":                 40,
	"foot_thickness":            20,
	"foot_radius":               6,
	"plat_length":               100,
	"plat_width":                80,
	"plat_thickness":            10,
	"is_plat_corner":            1,
	"plat_radius":               20,
}

// DefaultParams returns a fresh copy of the parameter set for a model.
// Unknown ids get the multi-leg set.
func DefaultParams(modelID int) map[string]any {
	switch modelID {
	case ModelDoubleSkid:
		return maps.Clone(doubleSkidParams)
	case ModelLinkage:
		return maps.Clone(linkageParams)
	default:
		return maps.Clone(multiLegParams)
	}
}

var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// parseParams turns a params string into JSON when it is, or nearly is, JSON.
// Single quotes and trailing commas are repaired; anything else is returned
// unchanged.
func parseParams(raw string) any {
	raw = strings.TrimSpace(raw)
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	repaired := trailingComma.ReplaceAllString(strings.ReplaceAll(raw, "'", `"`), "$1")
	if err := json.Unmarshal([]byte(repaired), &v); err == nil {
		return v
	}
	log.Printf("[concept-design] params is a string but not valid JSON, forwarding as-is")
	return raw
}

func emptyParams(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(p) == ""
	case map[string]any:
		return len(p) == 0
	case []any:
		return len(p) == 0
	case bool:
		return !p
	case float64:
		return p == 0
	}
	return false
}

// number converts numeric strings the way a loosely typed client expects:
// blank is zero, garbage is null. Other values pass through.
func number(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return float64(0)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return f
}

// text renders a path fragment for an image name.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func modelID(v any, fallback int) int {
	if f, ok := number(v).(float64); ok {
		return int(f)
	}
	return fallback
}
