package client

import "github.com/emberdb/emberdb/wire"

// HExpire sets the whole hash key's TTL to seconds from now.
func (c *Client) HExpire(key string, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHExpire, Key: key, Expire: seconds})
	return err
}

// HSet writes field within hash key.
func (c *Client) HSet(key, field string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHSet, Key: key, Field: field, Value: value})
	return err
}

// HSetNx writes field within hash key only if the field is absent.
func (c *Client) HSetNx(key, field string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHSetNx, Key: key, Field: field, Value: value})
	return err
}

// HSetEx writes field within hash key and sets the hash's TTL to seconds.
func (c *Client) HSetEx(key, field string, value wire.ValueType, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHSetEx, Key: key, Field: field, Value: value, Expire: seconds})
	return err
}

// HMSet writes multiple fields within hash key in one round trip.
func (c *Client) HMSet(key string, pairs []wire.FieldPair) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHMSet, Key: key, FieldPairs: pairs})
	return err
}

// HMSetNx writes multiple fields within hash key, skipping fields that already exist.
func (c *Client) HMSetNx(key string, pairs []wire.FieldPair) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHMSetNx, Key: key, FieldPairs: pairs})
	return err
}

// HGet returns field's value within hash key.
func (c *Client) HGet(key, field string) (wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHGet, Key: key, Field: field})
	return resp.Value, err
}

// HExists reports whether field exists within hash key.
func (c *Client) HExists(key, field string) (bool, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHExists, Key: key, Field: field})
	return resp.OptInt != nil, err
}

// HGetAll returns all fields and values of hash key, flattened as
// alternating field, value entries.
func (c *Client) HGetAll(key string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHGetAll, Key: key})
	return resp.Values, err
}

// HMGet returns the values for fields within hash key, omitting absent fields.
func (c *Client) HMGet(key string, fields ...string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHMGet, Key: key, Fields: fields})
	return resp.Values, err
}

// HKeys returns the field names of hash key.
func (c *Client) HKeys(key string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHKeys, Key: key})
	return resp.Values, err
}

// HValues returns the field values of hash key.
func (c *Client) HValues(key string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHValues, Key: key})
	return resp.Values, err
}

// HLen returns the number of fields in hash key.
func (c *Client) HLen(key string) (*uint32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHLen, Key: key})
	return resp.OptInt, err
}

// HDel removes fields from hash key.
func (c *Client) HDel(key string, fields ...string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpHDel, Key: key, Fields: fields})
	return err
}

// HDelGet removes field from hash key and returns its prior value.
func (c *Client) HDelGet(key, field string) (wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHDelGet, Key: key, Fields: []string{field}})
	if err != nil {
		return wire.ValueType{}, err
	}
	if len(resp.Values) == 0 {
		return wire.ValueType{}, nil
	}
	return resp.Values[0], nil
}

// HPopRand removes up to count random fields from hash key and returns
// their values; the removed field names are not returned.
func (c *Client) HPopRand(key string, count uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHPopRand, Key: key, Count: count})
	return resp.Values, err
}

// HIncr increments field within hash key by 1, creating it at 1 if absent.
func (c *Client) HIncr(key, field string) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHIncr, Key: key, Field: field})
	return resp.Value.Int, err
}

// HIncrBy increments field within hash key by by.
func (c *Client) HIncrBy(key, field string, by uint32) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHIncrBy, Key: key, Field: field, By: by})
	return resp.Value.Int, err
}

// HDecr decrements field within hash key by 1, creating it at -1 if absent.
func (c *Client) HDecr(key, field string) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHDecr, Key: key, Field: field})
	return resp.Value.Int, err
}

// HDecrBy decrements field within hash key by by.
func (c *Client) HDecrBy(key, field string, by uint32) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpHDecrBy, Key: key, Field: field, By: by})
	return resp.Value.Int, err
}
