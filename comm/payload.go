package comm

import (
	"encoding/json"
	"fmt"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// planPayload is the wire form of a broadcast plan.
//
// The checksum is computed by the sender and re-verified by every receiver;
// a mismatch means the plan was corrupted or diverged in transit and the
// run must not proceed on it.
type planPayload struct {
	Checksum uint64      `json:"checksum"`
	Plan     *types.Plan `json:"plan"`
}

func encodePlan(plan *types.Plan) ([]byte, error) {
	data, err := json.Marshal(planPayload{Checksum: plan.Checksum(), Plan: plan})
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	return data, nil
}

func decodePlan(data []byte) (*types.Plan, error) {
	var payload planPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	if payload.Plan == nil {
		return nil, fmt.Errorf("failed to decode plan: empty payload")
	}
	if payload.Plan.Checksum() != payload.Checksum {
		return nil, types.ErrPlanChecksumMismatch
	}

	return payload.Plan, nil
}

func encodeResult(result types.RankResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rank result: %w", err)
	}

	return data, nil
}

func decodeResult(data []byte) (types.RankResult, error) {
	var result types.RankResult
	if err := json.Unmarshal(data, &result); err != nil {
		return types.RankResult{}, fmt.Errorf("failed to decode rank result: %w", err)
	}

	return result, nil
}
