package huffstat

import (
	"bytes"
	"fmt"
	"io"
)

// Report collects the entropy and code-length figures for one input text.
//
// FirstOrderEntropy, SecondOrderEntropy, and AverageCodeLength are all in
// bits per original symbol.  JointAverageCodeLength is in bits per symbol
// pair; halve it before comparing against SecondOrderEntropy.
type Report struct {
	FirstOrderEntropy      float64 `json:"firstOrderEntropy"`
	SecondOrderEntropy     float64 `json:"secondOrderEntropy"`
	AverageCodeLength      float64 `json:"averageCodeLength"`
	JointAverageCodeLength float64 `json:"jointAverageCodeLength"`
}

// Analyze computes the full set of figures for the given text.  Each figure
// is computed from a fresh Model; nothing is cached between calls.
func Analyze(text string) (Report, error) {
	var r Report
	var err error

	if r.FirstOrderEntropy, err = EntropyOrder0(text); err != nil {
		return Report{}, err
	}
	if r.SecondOrderEntropy, err = EntropyOrder1(text); err != nil {
		return Report{}, err
	}
	if r.AverageCodeLength, err = AverageCodeLength(text, SingleSymbol); err != nil {
		return Report{}, err
	}
	if r.JointAverageCodeLength, err = AverageCodeLength(text, JointPairs); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Dump writes a programmer-readable debugging dump of the Report to the
// given writer.
func (r Report) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Report{\n")
	fmt.Fprintf(&buf, "\tFirstOrderEntropy = %.6f\n", r.FirstOrderEntropy)
	fmt.Fprintf(&buf, "\tSecondOrderEntropy = %.6f\n", r.SecondOrderEntropy)
	fmt.Fprintf(&buf, "\tAverageCodeLength = %.6f\n", r.AverageCodeLength)
	fmt.Fprintf(&buf, "\tJointAverageCodeLength = %.6f\n", r.JointAverageCodeLength)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
