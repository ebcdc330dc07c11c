package model

// Change identifies what a mutation touched.
type Change int

const (
	ChangeName Change = iota
	ChangeTotal
	ChangeDates
	ChangeActual
	ChangePlan
	ChangePeriods

	ChangeProjectAdded
	ChangeProjectRemoved
	ChangeSort
)

var changeNames = [...]string{
	ChangeName:           "name",
	ChangeTotal:          "total",
	ChangeDates:          "dates",
	ChangeActual:         "actual",
	ChangePlan:           "plan",
	ChangePeriods:        "periods",
	ChangeProjectAdded:   "project_added",
	ChangeProjectRemoved: "project_removed",
	ChangeSort:           "sort",
}

func (c Change) String() string {
	if c >= 0 && int(c) < len(changeNames) {
		return changeNames[c]
	}
	return "unknown"
}

// observers is a registration list of change callbacks. Callbacks run
// synchronously, in registration order, after the mutation is applied.
type observers struct {
	next int
	fns  map[int]func(Change)
	ids  []int
}

func (o *observers) subscribe(fn func(Change)) func() {
	if o.fns == nil {
		o.fns = make(map[int]func(Change))
	}
	id := o.next
	o.next++
	o.fns[id] = fn
	o.ids = append(o.ids, id)

	return func() {
		if _, ok := o.fns[id]; !ok {
			return
		}
		delete(o.fns, id)
		for i, v := range o.ids {
			if v == id {
				o.ids = append(o.ids[:i], o.ids[i+1:]...)
				break
			}
		}
	}
}

func (o *observers) notify(c Change) {
	// Copy so a callback may unsubscribe itself.
	ids := append([]int(nil), o.ids...)
	for _, id := range ids {
		if fn, ok := o.fns[id]; ok {
			fn(c)
		}
	}
}
