package compare_test

import (
	"fmt"

	"github.com/katalvlaran/izar/compare"
)

// ExampleBuildPlotModel demonstrates laying out a two-model WAIC
// comparison: the best model anchors the reference line and the runner-up
// gains a difference row with its dSE bar.
func ExampleBuildPlotModel() {
	tbl := &compare.Table{
		Criterion: compare.WAIC,
		Rows: []compare.Row{
			{Model: "non-centered", Value: 610.3, SE: 12.1, PIC: 5.0, DSE: 2.2, Rank: 1},
			{Model: "centered", Value: 608.1, SE: 11.4, PIC: 4.2, Rank: 0},
		},
	}

	pm, err := compare.BuildPlotModel(tbl, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("labels:", pm.YLabels)
	fmt.Println("ref line at:", pm.RefLineX)
	fmt.Printf("diff bar: [%.1f, %.1f]\n", pm.DSEBars[0].X0, pm.DSEBars[0].X1)
	fmt.Println("x label:", pm.XLabel)
	// Output:
	// labels: [centered  non-centered]
	// ref line at: 608.1
	// diff bar: [608.1, 612.5]
	// x label: Deviance
}
