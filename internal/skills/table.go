package skills

// DefaultTable returns the built-in synonym/variation groups. The groups are
// hand-curated from observed listing vocabulary; callers may extend the
// returned table before constructing a Normalizer.
func DefaultTable() Table {
	return Table{
		"customer service": {
			"guest service",
			"client service",
			"customer care",
			"customer support",
			"client relations",
		},
		"hospitality": {
			"hotel",
			"guest service",
			"front desk",
			"concierge",
			"resort",
		},
		"nursing": {
			"nurse",
			"patient care",
			"clinical care",
			"bedside care",
			"rn",
		},
		"software development": {
			"software engineering",
			"programming",
			"coding",
			"application development",
		},
		"javascript": {
			"js",
			"ecmascript",
			"node.js",
			"nodejs",
		},
		"react": {
			"react.js",
			"reactjs",
		},
		"leadership": {
			"team lead",
			"people management",
			"supervision",
			"mentoring",
		},
		"project management": {
			"program management",
			"pmp",
			"agile",
			"scrum",
		},
		"sales": {
			"business development",
			"account management",
			"upselling",
		},
		"data analysis": {
			"data analytics",
			"business intelligence",
			"reporting",
		},
	}
}

// Merge copies the entries of extra into the table, appending variants for
// keys present in both. The receiver is returned for chaining.
func (t Table) Merge(extra Table) Table {
	for canonical, variants := range extra {
		t[canonical] = append(t[canonical], variants...)
	}
	return t
}
