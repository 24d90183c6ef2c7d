package client

import "github.com/emberdb/emberdb/wire"

// LExpire sets the whole list key's TTL to seconds from now.
func (c *Client) LExpire(key string, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLExpire, Key: key, Expire: seconds})
	return err
}

// LLPush pushes value onto the front of list key.
func (c *Client) LLPush(key string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLLPush, Key: key, Value: value})
	return err
}

// LRPush pushes value onto the back of list key.
func (c *Client) LRPush(key string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLRPush, Key: key, Value: value})
	return err
}

// LLPushNx pushes value onto the front of list key only if key does not exist.
func (c *Client) LLPushNx(key string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLLPushNx, Key: key, Value: value})
	return err
}

// LRPushNx pushes value onto the back of list key only if key does not exist.
func (c *Client) LRPushNx(key string, value wire.ValueType) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLRPushNx, Key: key, Value: value})
	return err
}

// LLPushEx pushes value onto the front of list key and sets its TTL to seconds.
func (c *Client) LLPushEx(key string, value wire.ValueType, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLLPushEx, Key: key, Value: value, Expire: seconds})
	return err
}

// LRPushEx pushes value onto the back of list key and sets its TTL to seconds.
func (c *Client) LRPushEx(key string, value wire.ValueType, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpLRPushEx, Key: key, Value: value, Expire: seconds})
	return err
}

// LLPop pops up to count values from the front of list key.
func (c *Client) LLPop(key string, count uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpLLPop, Key: key, Count: count})
	return resp.Values, err
}

// LRPop pops up to count values from the back of list key.
func (c *Client) LRPop(key string, count uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpLRPop, Key: key, Count: count})
	return resp.Values, err
}

// LRange returns the half-open range [start, end) of list key.
func (c *Client) LRange(key string, start, end uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpLRange, Key: key, Start: start, End: end})
	return resp.Values, err
}
