// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of values @ integration points and postprocessors
package out

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/mcacace/lynx/fem"
)

// NumFmt is the format of numbers in tables
var NumFmt = "%14.6e"

// IpsTable returns a table with the coordinates and all values @ integration points
func IpsTable(d *fem.Domain) string {

	// keys
	keymap := make(map[string]bool)
	var keys []string
	for _, M := range d.Outs {
		if M == nil {
			continue
		}
		for _, key := range M.Keys() {
			if !keymap[key] {
				keymap[key] = true
				keys = append(keys, key)
			}
		}
	}

	// header
	var b bytes.Buffer
	width := len(io.Sf(NumFmt, 0.0))
	strfmt := io.Sf("%%%ds", width)
	io.Ff(&b, "%6s%4s", "cell", "ip")
	for i := 0; i < d.Ndim; i++ {
		io.Ff(&b, strfmt, "xyz"[i:i+1])
	}
	for _, key := range keys {
		io.Ff(&b, strfmt, key)
	}
	io.Ff(&b, "\n")

	// rows
	for cid, c := range d.Cells {
		M := d.Outs[cid]
		for ip, ipt := range c.Ips {
			io.Ff(&b, "%6d%4d", cid, ip)
			for _, x := range ipt.X {
				io.Ff(&b, NumFmt, x)
			}
			for _, key := range keys {
				val := 0.0
				if M != nil {
					val = M.Get(key, ip)
				}
				io.Ff(&b, NumFmt, val)
			}
			io.Ff(&b, "\n")
		}
	}
	return b.String()
}

// PpTable returns a table with the postprocessor values @ all output times
func PpTable(sum *fem.Summary) string {
	var names []string
	for name := range sum.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	width := len(io.Sf(NumFmt, 0.0))
	strfmt := io.Sf("%%%ds", width)
	l := io.Sf(strfmt, "time")
	for _, name := range names {
		l += io.Sf(strfmt, name)
	}
	l += "\n"
	for tidx, t := range sum.OutTimes {
		l += io.Sf(NumFmt, t)
		for _, name := range names {
			l += io.Sf(NumFmt, sum.Values[name][tidx])
		}
		l += "\n"
	}
	return l
}

// SaveIps saves the table of values @ integration points to <dirout>/<fnkey>_<tidx>.txt
func SaveIps(d *fem.Domain, dirout, fnkey string, tidx int) {
	io.WriteFileSD(dirout, io.Sf("%s_%06d.txt", fnkey, tidx), IpsTable(d))
}
