// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records the postprocessor values computed at each output time
type Summary struct {
	OutTimes []float64            `json:"outtimes"` // [nOutTimes] output times
	Values   map[string][]float64 `json:"values"`   // postprocessor name => [nOutTimes] values
}

// NewSummary returns a new Summary
func NewSummary() *Summary {
	return &Summary{Values: make(map[string][]float64)}
}

// Record appends the current time and the postprocessor values of a domain
func (o *Summary) Record(d *Domain) {
	o.OutTimes = append(o.OutTimes, d.T)
	for i, pp := range d.Pps {
		o.Values[pp.Name()] = append(o.Values[pp.Name()], d.Vals[i])
	}
}

// Save saves summary to <dirout>/<fnkey>_sum.json
func (o *Summary) Save(dirout, fnkey string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	io.WriteFileSD(dirout, fnkey+"_sum.json", string(b))
	return
}

// Read reads summary back from <dirout>/<fnkey>_sum.json
func (o *Summary) Read(dirout, fnkey string) (err error) {
	b, err := io.ReadFile(io.Sf("%s/%s_sum.json", dirout, fnkey))
	if err != nil {
		return chk.Err("cannot read summary file:\n%v", err)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return chk.Err("cannot decode summary:\n%v", err)
	}
	return
}
