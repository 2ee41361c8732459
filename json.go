package forwardlist

import jsoniter "github.com/json-iterator/go"

// MarshalJSON encodes the list as a JSON array in list order. An empty list
// encodes as [].
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(l.ToSlice())
}

// UnmarshalJSON decodes a JSON array and replaces the list contents with it.
// The new contents are built aside and swapped in, so a decode error leaves
// the list unchanged. Decoding the literal null is a no-op.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var values []T
	if err := jsoniter.Unmarshal(data, &values); err != nil {
		return err
	}

	l.Swap(Of(values...))

	return nil
}
