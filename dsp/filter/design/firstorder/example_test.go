package firstorder_test

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/filter/design/firstorder"
)

func ExampleIntegrator() {
	// Integrate a constant input at 100 Hz: each sample adds 1/100.
	f, err := firstorder.Integrator(100)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 5; i++ {
		y := f.ProcessSample(1)
		fmt.Printf("y[%d] = %.2f\n", i, y)
	}
	// Output:
	// y[0] = 0.01
	// y[1] = 0.02
	// y[2] = 0.03
	// y[3] = 0.04
	// y[4] = 0.05
}
