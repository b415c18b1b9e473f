package params_test

import (
	"fmt"

	"github.com/cwbudde/algo-audioedit/dsp/params"
)

func ExampleMapping_Map() {
	shelfGain := params.Mapping{Min: 0, Max: 9, Curve: params.CurveSquared}
	corner := params.Mapping{Min: 80, Max: 320, Curve: params.CurveExponential}

	fmt.Printf("gain at 50%%: %.2f dB\n", shelfGain.Map(50))
	fmt.Printf("corner at 0%%: %.0f Hz\n", corner.Map(0))
	fmt.Printf("corner at 100%%: %.0f Hz\n", corner.Map(100))
	// Output:
	// gain at 50%: 2.25 dB
	// corner at 0%: 80 Hz
	// corner at 100%: 320 Hz
}
