package metaschema

// Reporter renders the findings of one validated record.
// Report is called once per record, including records with no findings.
type Reporter interface {
	Report(findings []Finding)
}
