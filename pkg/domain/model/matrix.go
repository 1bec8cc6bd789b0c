package model

// MatrixRow is one line of the risk/control matrix of a company.
//
// The first row of a risk has RiskSpan set to the number of rows the risk
// occupies; following rows of the same risk have RiskSpan 0 and must not
// render the risk and impact cells again. Control is nil when the risk has no
// controls, in which case the risk occupies exactly one row.
type MatrixRow struct {
	Risk     *Risk
	Control  *Control
	RiskSpan int
}

// IsFirst reports whether the row starts a new risk group
func (r MatrixRow) IsFirst() bool {
	return r.RiskSpan > 0
}

// HasControl reports whether the row carries a control
func (r MatrixRow) HasControl() bool {
	return r.Control != nil
}

// Matrix is the combined per-company table joining each risk to its controls
type Matrix struct {
	Company *Company
	Rows    []MatrixRow
}

// BuildMatrix filters risks to those owned by company and controls to those
// owned by the selected risks, then joins them into rows. Input order is
// preserved for both risks and controls.
func BuildMatrix(company *Company, risks []*Risk, controls []*Control) *Matrix {
	byRisk := make(map[RiskID][]*Control)
	for _, c := range controls {
		byRisk[c.RiskID] = append(byRisk[c.RiskID], c)
	}

	m := &Matrix{Company: company, Rows: []MatrixRow{}}
	for _, risk := range risks {
		if risk.CompanyID != company.ID {
			continue
		}

		riskControls := byRisk[risk.ID]
		if len(riskControls) == 0 {
			m.Rows = append(m.Rows, MatrixRow{Risk: risk, RiskSpan: 1})
			continue
		}

		for i, c := range riskControls {
			row := MatrixRow{Risk: risk, Control: c}
			if i == 0 {
				row.RiskSpan = len(riskControls)
			}
			m.Rows = append(m.Rows, row)
		}
	}

	return m
}

// Risks returns the distinct risks of the matrix in row order
func (m *Matrix) Risks() []*Risk {
	var risks []*Risk
	for _, row := range m.Rows {
		if row.IsFirst() {
			risks = append(risks, row.Risk)
		}
	}
	return risks
}

// Controls returns every control of the matrix in row order
func (m *Matrix) Controls() []*Control {
	var controls []*Control
	for _, row := range m.Rows {
		if row.HasControl() {
			controls = append(controls, row.Control)
		}
	}
	return controls
}
