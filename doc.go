// Copyright (C) 2016-2018 Vladimir Bauer
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pbr draws text progress bars in a terminal.

A Bar owns a single line. It redraws on every update, limited by
SetMaxRefreshRate, and is supposed to be driven by a single goroutine:

	bar := pbr.New(100)
	for i := 0; i < 100; i++ {
		bar.Inc()
	}
	bar.FinishPrintln("done")

Multi stacks several bars, each of which may be driven by its own
goroutine, while one goroutine runs Listen:

	m := pbr.NewMulti()
	m.Println("downloads:")
	for _, f := range files {
		bar := m.CreateBar(f.size)
		go download(f, bar)
	}
	if err := m.Listen(); err != nil {
		log.Fatal(err)
	}

Line layout, left to right: message, counter, tick, bar, percent, speed and
time left. Each segment is toggled by one of the Show* fields of Bar.
*/
package pbr
