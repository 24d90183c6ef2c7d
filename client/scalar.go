package client

import "github.com/emberdb/emberdb/wire"

// Expire sets key's TTL to seconds from now.
func (c *Client) Expire(key string, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpExpire, Key: key, Expire: seconds})
	return err
}

// Persist removes key's TTL, if any.
func (c *Client) Persist(key string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpPersist, Key: key})
	return err
}

// Ttl returns key's remaining TTL in seconds, or nil if key has none or
// does not exist.
func (c *Client) Ttl(key string) (*uint32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpTtl, Key: key})
	if err != nil {
		return nil, err
	}
	return resp.OptInt, nil
}

// Del removes zero or more keys regardless of their value kind.
func (c *Client) Del(keys ...string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpDel, Keys: keys})
	return err
}

// Get returns key's value, or None if it does not exist.
func (c *Client) Get(key string) (wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpGet, Key: key})
	return resp.Value, err
}

// Set writes value to key. Setting None deletes key.
func (c *Client) Set(key string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSet, Key: key, Value: value})
	return err
}

// SetEx writes value to key with a TTL of seconds.
func (c *Client) SetEx(key string, value wire.ValueType, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSetEx, Key: key, Value: value, Expire: seconds})
	return err
}

// SetNx writes value to key only if key does not already exist.
func (c *Client) SetNx(key string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSetNx, Key: key, Value: value})
	return err
}

// MGet returns the values for keys, omitting entries whose key is absent or
// holds a non-scalar value.
func (c *Client) MGet(keys ...string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpMGet, Keys: keys})
	return resp.Values, err
}

// MSet writes multiple key/value pairs in one round trip.
func (c *Client) MSet(keys []string, values []wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpMSet, Keys: keys, Values: values})
	return err
}

// MSetNx writes multiple key/value pairs, skipping any key that already exists.
func (c *Client) MSetNx(keys []string, values []wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpMSetNx, Keys: keys, Values: values})
	return err
}

// GetSet atomically writes value to key and returns the previous value.
func (c *Client) GetSet(key string, value wire.ValueType) (wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpGetSet, Key: key, Value: value})
	return resp.Value, err
}

// GetEx returns key's value and refreshes its TTL to seconds.
func (c *Client) GetEx(key string, seconds uint32) (wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpGetEx, Key: key, Expire: seconds})
	return resp.Value, err
}

// GetDel returns key's value and deletes it.
func (c *Client) GetDel(key string) (wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpGetDel, Keys: []string{key}})
	if err != nil {
		return wire.ValueType{}, err
	}
	if len(resp.Values) == 0 {
		return wire.ValueType{}, nil
	}
	return resp.Values[0], nil
}

// Incr increments key by 1, creating it at 1 if absent.
func (c *Client) Incr(key string) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpIncr, Key: key})
	return resp.Value.Int, err
}

// IncrBy increments key by by, creating it at by if absent.
func (c *Client) IncrBy(key string, by uint32) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpIncrBy, Key: key, By: by})
	return resp.Value.Int, err
}

// Decr decrements key by 1, creating it at -1 if absent.
func (c *Client) Decr(key string) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpDecr, Key: key})
	return resp.Value.Int, err
}

// DecrBy decrements key by by, creating it at -by if absent.
func (c *Client) DecrBy(key string, by uint32) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpDecrBy, Key: key, By: by})
	return resp.Value.Int, err
}
