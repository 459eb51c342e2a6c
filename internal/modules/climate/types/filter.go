package types

const DateLayout = "2006-01-02"

// DateFilter selects measurements by their ISO date. An empty bound is open.
// Dates compare as strings; YYYY-MM-DD sorts chronologically.
type DateFilter struct {
	From          string
	FromExclusive bool
	To            string
	ToExclusive   bool
}

// RecentYear is the last year of the dataset: after 2016-08-23, up to and
// including 2017-08-23.
var RecentYear = DateFilter{
	From:          "2016-08-23",
	FromExclusive: true,
	To:            "2017-08-23",
}

// Between returns the inclusive range [start, end].
func Between(start, end string) DateFilter {
	return DateFilter{From: start, To: end}
}

func (f DateFilter) Contains(date string) bool {
	if f.From != "" {
		if f.FromExclusive && date <= f.From {
			return false
		}
		if !f.FromExclusive && date < f.From {
			return false
		}
	}
	if f.To != "" {
		if f.ToExclusive && date >= f.To {
			return false
		}
		if !f.ToExclusive && date > f.To {
			return false
		}
	}
	return true
}

// Where renders the filter as a SQL condition on column with '?'
// placeholders. It returns an empty clause for an open filter.
func (f DateFilter) Where(column string) (string, []any) {
	var (
		clause string
		args   []any
	)
	add := func(op, value string) {
		if clause != "" {
			clause += " AND "
		}
		clause += column + " " + op + " ?"
		args = append(args, value)
	}
	if f.From != "" {
		if f.FromExclusive {
			add(">", f.From)
		} else {
			add(">=", f.From)
		}
	}
	if f.To != "" {
		if f.ToExclusive {
			add("<", f.To)
		} else {
			add("<=", f.To)
		}
	}
	return clause, args
}
