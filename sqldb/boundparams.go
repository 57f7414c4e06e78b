package sqldb

// BoundParams accumulates positional parameters and queued batch rows.
// Driver impls embed it so binding behaves the same across dialects.
type BoundParams struct {
	args  []any
	batch [][]any
}

func (p *BoundParams) Bind(pos int, value any) error {
	if err := CheckParamPos(pos); err != nil {
		return err
	}
	if err := CheckParamType(value); err != nil {
		return err
	}
	for len(p.args) < pos {
		p.args = append(p.args, nil)
	}
	p.args[pos-1] = value
	return nil
}

// QueueRow snapshots the bound parameters as one batch row and clears
// them for the next row.
func (p *BoundParams) QueueRow() error {
	row := make([]any, len(p.args))
	copy(row, p.args)
	p.batch = append(p.batch, row)
	p.args = p.args[:0]
	return nil
}

func (p *BoundParams) Args() []any { return p.args }

func (p *BoundParams) Rows() [][]any { return p.batch }

func (p *BoundParams) ClearRows() { p.batch = p.batch[:0] }
