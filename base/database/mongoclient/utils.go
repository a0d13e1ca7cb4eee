package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotStruct = fmt.Errorf("filter is not a struct")
)

// MakeBsonM turns a filter struct into a selector. Fields tagged "-",
// unexported fields and zero values are left out, non-nil pointers are
// dereferenced so a pointer to false still filters.
func MakeBsonM(filter interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(filter))
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	res := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		sf, field := val.Type().Field(i), val.Field(i)
		if sf.PkgPath != "" || field.IsZero() {
			continue
		}

		tag, err := bsoncodec.DefaultStructTagParser(sf)
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}

		if field.Kind() == reflect.Ptr {
			res[tag.Name] = field.Elem().Interface()
		} else {
			res[tag.Name] = field.Interface()
		}
	}
	return res, nil
}
