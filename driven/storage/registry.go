// Copyright 2023 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const typeUUID logutils.MessageDataType = "uuid"

var (
	tUUID = reflect.TypeOf(uuid.UUID{})

	registry     *bsoncodec.Registry
	registryOnce sync.Once
)

// getRegistry gives the process wide bson registry. It is built once and never changed afterwards.
func getRegistry() *bsoncodec.Registry {
	registryOnce.Do(func() {
		reg := bson.NewRegistry()
		reg.RegisterTypeEncoder(tUUID, bsoncodec.ValueEncoderFunc(uuidEncodeValue))
		reg.RegisterTypeDecoder(tUUID, bsoncodec.ValueDecoderFunc(uuidDecodeValue))
		registry = reg
	})
	return registry
}

// uuidEncodeValue stores a UUID as binary subtype 4
func uuidEncodeValue(ec bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tUUID {
		return bsoncodec.ValueEncoderError{Name: "uuidEncodeValue", Types: []reflect.Type{tUUID}, Received: val}
	}
	id := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(id[:], bsontype.BinaryUUID)
}

func uuidDecodeValue(dc bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tUUID {
		return bsoncodec.ValueDecoderError{Name: "uuidDecodeValue", Types: []reflect.Type{tUUID}, Received: val}
	}

	switch vrType := vr.Type(); vrType {
	case bsontype.Binary:
		data, subtype, err := vr.ReadBinary()
		if err != nil {
			return err
		}
		if subtype != bsontype.BinaryUUID && subtype != bsontype.BinaryUUIDOld {
			return errors.ErrorData(logutils.StatusInvalid, typeUUID, &logutils.FieldArgs{"subtype": subtype})
		}
		id, err := uuid.FromBytes(data)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionParse, typeUUID, nil, err)
		}
		val.Set(reflect.ValueOf(id))
		return nil
	case bsontype.Null:
		val.Set(reflect.ValueOf(uuid.Nil))
		return vr.ReadNull()
	default:
		return errors.ErrorData(logutils.StatusInvalid, typeUUID, &logutils.FieldArgs{"bson_type": vrType.String()})
	}
}
