// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/fem"
	"github.com/stretchr/testify/require"
)

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. tables")

	analysis, err := fem.NewMain("../inp/data/column.sim", false)
	require.NoError(tst, err)
	var last string
	analysis.Output = func(d *fem.Domain, tidx int) error {
		last = IpsTable(d)
		SaveIps(d, "/tmp/lynx/out", "column", tidx)
		return nil
	}
	require.NoError(tst, analysis.Run())

	// header + 4 cells × 4 ips
	lines := strings.Split(strings.TrimSpace(last), "\n")
	require.Len(tst, lines, 17)
	header := strings.Fields(lines[0])
	require.Equal(tst, []string{"cell", "ip", "x", "y"}, header[:4])
	require.Contains(tst, header, "rho_b")
	require.Contains(tst, header, "eps_xy")
	require.Contains(tst, header, "deps_yx")
	require.Contains(tst, header, "ezz")

	b, err := io.ReadFile("/tmp/lynx/out/column_000002.txt")
	require.NoError(tst, err)
	require.Equal(tst, last, string(b))

	tab := PpTable(analysis.Summary)
	io.Pf("%s", tab)
	lines = strings.Split(strings.TrimSpace(tab), "\n")
	require.Len(tst, lines, 4)
	require.Equal(tst, []string{"time", "area", "vrms"}, strings.Fields(lines[0]))
}
