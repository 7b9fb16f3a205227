package catalog

import (
	"fmt"

	appErrors "github.com/jupiterp/jupiterp-go/pkg/errors"
)

// GenEd is a general-education requirement a course may satisfy, identified
// by its four-letter code as listed on Testudo.
type GenEd struct {
	Code string
	Name string
}

// The fixed set of gen-ed requirements. These are hard-coded and must be
// kept in sync with Testudo.
var (
	GenEdFSAW = GenEd{Code: "FSAW", Name: "Academic Writing"}
	GenEdFSAR = GenEd{Code: "FSAR", Name: "Analytic Reasoning"}
	GenEdFSMA = GenEd{Code: "FSMA", Name: "Math"}
	GenEdFSOC = GenEd{Code: "FSOC", Name: "Oral Communications"}
	GenEdFSPW = GenEd{Code: "FSPW", Name: "Professional Writing"}

	GenEdDSHS = GenEd{Code: "DSHS", Name: "History and Social Sciences"}
	GenEdDSHU = GenEd{Code: "DSHU", Name: "Humanities"}
	GenEdDSNS = GenEd{Code: "DSNS", Name: "Natural Sciences"}
	GenEdDSNL = GenEd{Code: "DSNL", Name: "Natural Science Lab"}
	GenEdDSSP = GenEd{Code: "DSSP", Name: "Scholarship in Practice"}

	GenEdDVCC = GenEd{Code: "DVCC", Name: "Cultural Competency"}
	GenEdDVUP = GenEd{Code: "DVUP", Name: "Understanding Plural Societies"}

	GenEdSCIS = GenEd{Code: "SCIS", Name: "Signature Courses - Big Question"}
)

var allGenEds = []GenEd{
	GenEdFSAW, GenEdFSAR, GenEdFSMA, GenEdFSOC, GenEdFSPW,
	GenEdDSHS, GenEdDSHU, GenEdDSNS, GenEdDSNL, GenEdDSSP,
	GenEdDVCC, GenEdDVUP, GenEdSCIS,
}

var genEdsByCode = func() map[string]GenEd {
	m := make(map[string]GenEd, len(allGenEds))
	for _, g := range allGenEds {
		m[g.Code] = g
	}
	return m
}()

// GenEds returns the fixed gen-ed set in its canonical order.
func GenEds() []GenEd {
	out := make([]GenEd, len(allGenEds))
	copy(out, allGenEds)
	return out
}

// GenEdFromCode resolves a four-letter code to its GenEd value. Resolution
// fails for any code outside the fixed set.
func GenEdFromCode(code string) (GenEd, error) {
	g, ok := genEdsByCode[code]
	if !ok {
		return GenEd{}, appErrors.Clone(appErrors.ErrUnknownGenEd, fmt.Sprintf("unknown gen-ed code %q", code))
	}
	return g, nil
}
