// Copyright (C) 2016-2018 Vladimir Bauer
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decor contains formatters of the text segments drawn around a bar
by "github.com/vbauerster/pbr" package: counter, percentage, speed and
time left.

Formatters are pure functions of bar statistics, except MovingAverage
implementations, which have state. Don't share a MovingAverage among
multiple *pbr.Bar instances, create new one per bar instead.

Don't:

	avg := decor.NewEwma(30)
	b1 := pbr.New(100, pbr.BarSpeedAverage(avg))
	b2 := pbr.New(100, pbr.BarSpeedAverage(avg))

Do:

	b1 := pbr.New(100, pbr.BarSpeedEwma(30))
	b2 := pbr.New(100, pbr.BarSpeedEwma(30))
*/
package decor
