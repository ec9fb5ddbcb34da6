package v1alpha1

import (
	"encoding/json"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// Request field names
const (
	FieldPlayerID   = "player_id"
	FieldElement    = "element"
	FieldSlotIndex  = "slot_index"
	FieldRoundIndex = "round_index"
	FieldCurrency   = "currency"
	FieldBranch     = "branch"
)

type commandResponse struct {
	State  *wuxing.GameState `json:"state"`
	Events []engine.Event    `json:"events"`
}

type stateResponse struct {
	State *wuxing.GameState `json:"state"`
}

type canStartResponse struct {
	CanStart  bool `json:"can_start"`
	Threshold int  `json:"threshold"`
}

type upgradeCostResponse struct {
	Cost       engine.UpgradeCost `json:"cost"`
	Affordable bool               `json:"affordable"`
}

func stringField(req *structpb.Struct, name string) string {
	v, ok := req.GetFields()[name]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	s := stringField(req, name)
	if s == "" {
		return "", errors.InvalidArgumentf("%s is required", name)
	}
	return s, nil
}

func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", name)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be an integer", name)
	}
	return int(n.NumberValue), nil
}

// toStruct converts a JSON-tagged value into a Struct
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrapf(err, "failed to convert response")
	}
	return out, nil
}
