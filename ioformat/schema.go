// Package ioformat is the JSON wire format spec §6 specifies: a Problem
// input schema and a Solution output schema, field-for-field, plus the
// glue that maps each onto problem.Problem / solution.Solution. No part of
// omp, constructive, neighborhood, heuristic or feedback imports this
// package, JSON is strictly a driver (cmd/) concern, per spec §1's "out
// of core scope: JSON I/O".
package ioformat

import (
	"encoding/json"
	"fmt"
)

// quality is a named quality parameter and its measured value, embedded in
// both stockpileSchema.QualityIni and inputSchema.Quality.
type quality struct {
	Parameter string  `json:"parameter"`
	Value     float64 `json:"value"`
}

// qualityRequest is an output request's per-parameter target: bounds,
// goal, and importance weight.
type qualityRequest struct {
	Parameter  string  `json:"parameter"`
	Minimum    float64 `json:"minimum"`
	Maximum    float64 `json:"maximum"`
	Goal       float64 `json:"goal"`
	Importance float64 `json:"importance"`
}

// infoSchema is spec §6's `info` field: the literal tuple `[name, ω1, ω2]`,
// matching original_source/src/model/problem.py's `_info: List[Union[str,
// int]]` (a plain JSON array, not an object). MarshalJSON/UnmarshalJSON
// encode/decode that array shape while keeping the named fields convenient
// to use everywhere else in this package.
type infoSchema struct {
	Name   string
	Omega1 float64
	Omega2 float64
}

func (i infoSchema) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]interface{}{i.Name, i.Omega1, i.Omega2})
}

func (i *infoSchema) UnmarshalJSON(data []byte) error {
	var tuple [3]interface{}
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("decoding info tuple: %w", err)
	}
	name, ok := tuple[0].(string)
	if !ok {
		return fmt.Errorf("info[0]: expected name string, got %T", tuple[0])
	}
	omega1, ok := tuple[1].(float64)
	if !ok {
		return fmt.Errorf("info[1]: expected omega1 number, got %T", tuple[1])
	}
	omega2, ok := tuple[2].(float64)
	if !ok {
		return fmt.Errorf("info[2]: expected omega2 number, got %T", tuple[2])
	}
	i.Name, i.Omega1, i.Omega2 = name, omega1, omega2
	return nil
}

type stockpileSchema struct {
	ID         int       `json:"id"`
	Position   int       `json:"position"`
	Yard       int       `json:"yard"`
	Rails      []int     `json:"rails"`
	Capacity   float64   `json:"capacity"`
	WeightIni  float64   `json:"weightIni"`
	QualityIni []quality `json:"qualityIni"`
}

type engineSchema struct {
	ID           int     `json:"id"`
	SpeedStack   float64 `json:"speedStack"`
	SpeedReclaim float64 `json:"speedReclaim"`
	PosIni       int     `json:"posIni"`
	Rail         int     `json:"rail"`
	Yards        []int   `json:"yards"`
}

type inputSchema struct {
	ID      int       `json:"id"`
	Weight  float64   `json:"weight"`
	Quality []quality `json:"quality"`
	Time    float64   `json:"time"`
}

type outputSchema struct {
	ID          int              `json:"id"`
	Destination int              `json:"destination"`
	Weight      float64          `json:"weight"`
	Quality     []qualityRequest `json:"quality"`
	Time        float64          `json:"time"`
}

// problemSchema is the literal §6 Problem input record.
type problemSchema struct {
	Info            infoSchema        `json:"info"`
	Stockpiles      []stockpileSchema `json:"stockpiles"`
	Engines         []engineSchema    `json:"engines"`
	Inputs          []inputSchema     `json:"inputs"`
	Outputs         []outputSchema    `json:"outputs"`
	DistancesTravel [][]float64       `json:"distancesTravel"`
	TimeTravel      [][]float64       `json:"timeTravel"`
}

// stackEventSchema is one entry in the output `stacks[]` event list.
type stackEventSchema struct {
	Weight    float64 `json:"weight"`
	Stockpile int     `json:"stockpile"`
	Engine    int     `json:"engine"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
}

// reclaimEventSchema is one entry in the output `reclaims[]` event list;
// it additionally carries `output`, the request id it served.
type reclaimEventSchema struct {
	Weight    float64 `json:"weight"`
	Stockpile int     `json:"stockpile"`
	Engine    int     `json:"engine"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
	Output    int     `json:"output"`
}

// deliveryQualitySchema is one quality parameter's realized value alongside
// its original bounds, in an output `outputs[]` delivery summary.
type deliveryQualitySchema struct {
	Parameter  string  `json:"parameter"`
	Value      float64 `json:"value"`
	Minimum    float64 `json:"minimum"`
	Maximum    float64 `json:"maximum"`
	Goal       float64 `json:"goal"`
	Importance float64 `json:"importance"`
}

// deliverySchema is one output request's fulfillment summary.
type deliverySchema struct {
	Weight    float64                 `json:"weight"`
	StartTime float64                 `json:"start_time"`
	Duration  float64                 `json:"duration"`
	Quality   []deliveryQualitySchema `json:"quality"`
}

// solutionSchema is the literal §6 Solution output record. Objective is a
// pointer so a nil value serializes as JSON null when the OMP returned no
// feasible solution.
type solutionSchema struct {
	Info      infoSchema           `json:"info"`
	Objective *float64             `json:"objective"`
	Gap       []float64            `json:"gap"`
	Stacks    []stackEventSchema   `json:"stacks"`
	Reclaims  []reclaimEventSchema `json:"reclaims"`
	Outputs   []deliverySchema     `json:"outputs"`
}
