package response

import "github.com/jinzhu/copier"

// copyFrom maps same-named fields of src onto a new T.
func copyFrom[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		// only reachable with mismatched kinds, i.e. a broken DTO definition
		panic(err)
	}
	return dst
}
