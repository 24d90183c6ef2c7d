package client

import "github.com/emberdb/emberdb/wire"

// SExpire sets the whole set key's TTL to seconds from now.
func (c *Client) SExpire(key string, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSExpire, Key: key, Expire: seconds})
	return err
}

// SAdd adds members to set key.
func (c *Client) SAdd(key string, members ...string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSAdd, Key: key, Members: members})
	return err
}

// SAddNx adds members to set key; identical to SAdd since re-adding an
// existing member is already a no-op.
func (c *Client) SAddNx(key string, members ...string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSAddNx, Key: key, Members: members})
	return err
}

// SAddEx adds member to set key and sets the set's TTL to seconds.
func (c *Client) SAddEx(key, member string, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSAddEx, Key: key, Member: member, Expire: seconds})
	return err
}

// SMember reports whether member is present in set key.
func (c *Client) SMember(key, member string) (bool, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpSMember, Key: key, Member: member})
	return resp.OptInt != nil, err
}

// SMembers returns all members of set key.
func (c *Client) SMembers(key string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpSMembers, Key: key})
	return resp.Values, err
}

// SRem removes members from set key.
func (c *Client) SRem(key string, members ...string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpSRem, Key: key, Members: members})
	return err
}

// SPop removes and returns up to count random members from set key.
func (c *Client) SPop(key string, count uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpSPop, Key: key, Count: count})
	return resp.Values, err
}
