// Copyright 2017 The Lynx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import "github.com/cpmech/gosl/fun/dbf"

// readGravity reads the components of the gravity vector; missing ones are zero
func readGravity(g []float64, prms dbf.Params) {
	for i, key := range []string{"gx", "gy", "gz"} {
		g[i] = 0
		if p := prms.Find(key); p != nil {
			g[i] = p.V
		}
	}
}
