package dataset

import "math"

// Split partitions records into train and test views, stratified per label.
// Label groups keep their original record order and are visited in order of
// first occurrence. Within a group of size n the first floor(n*fraction)
// records become test and the remainder train, so no record is duplicated
// or dropped.
func Split(records []Record, fraction float64) (View, View) {
	var order []string
	groups := make(map[string][]*Record)

	for i := range records {
		label := records[i].Label
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], &records[i])
	}

	var train, test View
	for _, label := range order {
		group := groups[label]
		amount := int(math.Floor(float64(len(group)) * fraction))
		test = append(test, group[:amount]...)
		train = append(train, group[amount:]...)
	}
	return train, test
}
