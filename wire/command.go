package wire

// CommandOp tags the variant of a ClientCommand. Discriminants are assigned
// by declaration order starting at 0; this ordering is part of the wire
// contract and must not change without a protocol version bump.
type CommandOp byte

const (
	OpExpire CommandOp = iota
	OpPersist
	OpTtl
	OpDel

	OpDecr
	OpDecrBy
	OpIncr
	OpIncrBy
	OpGet
	OpGetDel
	OpGetEx
	OpGetSet
	OpMGet
	OpSet
	OpSetEx
	OpSetNx
	OpMSet
	OpMSetNx

	OpHExpire
	OpHDel
	OpHDelGet
	OpHPopRand
	OpHExists
	OpHGet
	OpHGetAll
	OpHMGet
	OpHKeys
	OpHValues
	OpHLen
	OpHDecr
	OpHDecrBy
	OpHIncr
	OpHIncrBy
	OpHSet
	OpHSetNx
	OpHSetEx
	OpHMSet
	OpHMSetNx

	OpZAdd
	OpZAddNx
	OpZIncrBy
	OpZDecrBy
	OpZScore
	OpZMScore
	OpZPopMin
	OpZPopMax
	OpZRem
	OpZExpire

	OpLLPush
	OpLLPushNx
	OpLLPushEx
	OpLRPush
	OpLRPushNx
	OpLRPushEx
	OpLExpire
	OpLLPop
	OpLRPop
	OpLRange

	OpSAdd
	OpSAddNx
	OpSAddEx
	OpSMember
	OpSMembers
	OpSExpire
	OpSRem
	OpSPop

	numCommandOps
)

// ClientCommand is every request variant flattened into one struct. Only the
// fields relevant to Op are populated; it is the wire-level analogue of the
// source's tagged ClientCommand enum, represented this way because Go has no
// native sum type and a flattened struct keeps the per-variant codec table
// (commandTable below) as data rather than sixty-odd hand-written struct types.
type ClientCommand struct {
	Op CommandOp

	Key    string
	Keys   []string
	Value  ValueType
	Values []ValueType

	By     uint32
	Expire uint32

	Field      string
	Fields     []string
	FieldPairs []FieldPair

	Score   uint32
	Member  string
	Members []string

	Count uint32
	Index uint32
	Start uint32
	End   uint32
}

// commandDescriptor centralizes one variant's name and its encode/decode
// pair. commandTable is the single place to touch when adding a command.
type commandDescriptor struct {
	name   string
	encode func(*Writer, ClientCommand) error
	decode func(*Reader) (ClientCommand, error)
}

var commandTable = [numCommandOps]commandDescriptor{
	OpExpire: {"Expire", encKeyExpire, decKeyExpire(OpExpire)},
	OpPersist: {"Persist", encKey, decKey(OpPersist)},
	OpTtl:     {"Ttl", encKey, decKey(OpTtl)},
	OpDel:     {"Del", encKeys, decKeys(OpDel)},

	OpDecr:    {"Decr", encKey, decKey(OpDecr)},
	OpDecrBy:  {"DecrBy", encKeyBy, decKeyBy(OpDecrBy)},
	OpIncr:    {"Incr", encKey, decKey(OpIncr)},
	OpIncrBy:  {"IncrBy", encKeyBy, decKeyBy(OpIncrBy)},
	OpGet:     {"Get", encKey, decKey(OpGet)},
	OpGetDel:  {"GetDel", encKeys, decKeys(OpGetDel)},
	OpGetEx:   {"GetEx", encKeyExpire, decKeyExpire(OpGetEx)},
	OpGetSet:  {"GetSet", encKeyValue, decKeyValue(OpGetSet)},
	OpMGet:    {"MGet", encKeys, decKeys(OpMGet)},
	OpSet:     {"Set", encKeyValue, decKeyValue(OpSet)},
	OpSetEx:   {"SetEx", encKeyValueExpire, decKeyValueExpire(OpSetEx)},
	OpSetNx:   {"SetNx", encKeyValue, decKeyValue(OpSetNx)},
	OpMSet:    {"MSet", encKeysValues, decKeysValues(OpMSet)},
	OpMSetNx:  {"MSetNx", encKeysValues, decKeysValues(OpMSetNx)},

	OpHExpire:  {"HExpire", encKeyFieldExpire, decKeyFieldExpire(OpHExpire)},
	OpHDel:     {"HDel", encKeyFields, decKeyFields(OpHDel)},
	OpHDelGet:  {"HDelGet", encKeyFields, decKeyFields(OpHDelGet)},
	OpHPopRand: {"HPopRand", encKeyCount, decKeyCount(OpHPopRand)},
	OpHExists:  {"HExists", encKeyField, decKeyField(OpHExists)},
	OpHGet:     {"HGet", encKeyField, decKeyField(OpHGet)},
	OpHGetAll:  {"HGetAll", encKey, decKey(OpHGetAll)},
	OpHMGet:    {"HMGet", encKeyFields, decKeyFields(OpHMGet)},
	OpHKeys:    {"HKeys", encKey, decKey(OpHKeys)},
	OpHValues:  {"HValues", encKey, decKey(OpHValues)},
	OpHLen:     {"HLen", encKey, decKey(OpHLen)},
	OpHDecr:    {"HDecr", encKeyField, decKeyField(OpHDecr)},
	OpHDecrBy:  {"HDecrBy", encKeyFieldBy, decKeyFieldBy(OpHDecrBy)},
	OpHIncr:    {"HIncr", encKeyField, decKeyField(OpHIncr)},
	OpHIncrBy:  {"HIncrBy", encKeyFieldBy, decKeyFieldBy(OpHIncrBy)},
	OpHSet:     {"HSet", encKeyFieldValue, decKeyFieldValue(OpHSet)},
	OpHSetNx:   {"HSetNx", encKeyFieldValue, decKeyFieldValue(OpHSetNx)},
	OpHSetEx:   {"HSetEx", encKeyFieldValueExpire, decKeyFieldValueExpire(OpHSetEx)},
	OpHMSet:    {"HMSet", encKeyFieldPairs, decKeyFieldPairs(OpHMSet)},
	OpHMSetNx:  {"HMSetNx", encKeyFieldPairs, decKeyFieldPairs(OpHMSetNx)},

	OpZAdd:    {"ZAdd", encKeyScoreMember, decKeyScoreMember(OpZAdd)},
	OpZAddNx:  {"ZAddNx", encKeyScoreMember, decKeyScoreMember(OpZAddNx)},
	OpZIncrBy: {"ZIncrBy", encKeyScoreMember, decKeyScoreMember(OpZIncrBy)},
	OpZDecrBy: {"ZDecrBy", encKeyScoreMember, decKeyScoreMember(OpZDecrBy)},
	OpZScore:  {"ZScore", encKeyMember, decKeyMember(OpZScore)},
	OpZMScore: {"ZMScore", encKeyMembers, decKeyMembers(OpZMScore)},
	OpZPopMin: {"ZPopMin", encKeyCount, decKeyCount(OpZPopMin)},
	OpZPopMax: {"ZPopMax", encKeyCount, decKeyCount(OpZPopMax)},
	OpZRem:    {"ZRem", encKeyMember, decKeyMember(OpZRem)},
	OpZExpire: {"ZExpire", encKeyMemberExpire, decKeyMemberExpire(OpZExpire)},

	OpLLPush:   {"LLPush", encKeyValue, decKeyValue(OpLLPush)},
	OpLLPushNx: {"LLPushNx", encKeyValue, decKeyValue(OpLLPushNx)},
	OpLLPushEx: {"LLPushEx", encKeyValueExpire, decKeyValueExpire(OpLLPushEx)},
	OpLRPush:   {"LRPush", encKeyValue, decKeyValue(OpLRPush)},
	OpLRPushNx: {"LRPushNx", encKeyValue, decKeyValue(OpLRPushNx)},
	OpLRPushEx: {"LRPushEx", encKeyValueExpire, decKeyValueExpire(OpLRPushEx)},
	OpLExpire:  {"LExpire", encKeyIndexExpire, decKeyIndexExpire(OpLExpire)},
	OpLLPop:    {"LLPop", encKeyCount, decKeyCount(OpLLPop)},
	OpLRPop:    {"LRPop", encKeyCount, decKeyCount(OpLRPop)},
	OpLRange:   {"LRange", encKeyStartEnd, decKeyStartEnd(OpLRange)},

	OpSAdd:     {"SAdd", encKeyMembers, decKeyMembers(OpSAdd)},
	OpSAddNx:   {"SAddNx", encKeyMembers, decKeyMembers(OpSAddNx)},
	OpSAddEx:   {"SAddEx", encKeyMemberExpire, decKeyMemberExpire(OpSAddEx)},
	OpSMember:  {"SMember", encKeyMember, decKeyMember(OpSMember)},
	OpSMembers: {"SMembers", encKey, decKey(OpSMembers)},
	OpSExpire:  {"SExpire", encKeyMemberExpire, decKeyMemberExpire(OpSExpire)},
	OpSRem:     {"SRem", encKeyMembers, decKeyMembers(OpSRem)},
	OpSPop:     {"SPop", encKeyCount, decKeyCount(OpSPop)},
}

// Name returns the declared variant name for c.Op, or "" if c.Op is invalid.
func (c ClientCommand) Name() string {
	if int(c.Op) >= len(commandTable) {
		return ""
	}
	return commandTable[c.Op].name
}

// WriteClientCommand encodes the discriminant byte followed by the variant's
// fields in declared order.
func (e *Writer) WriteClientCommand(c ClientCommand) error {
	if err := e.WriteU8(byte(c.Op)); err != nil {
		return err
	}
	return commandTable[c.Op].encode(e, c)
}

// ReadClientCommand decodes the discriminant byte and dispatches to the
// matching variant's decoder. An out-of-range discriminant is a protocol
// error; the caller must not attempt to resynchronize.
func (d *Reader) ReadClientCommand() (ClientCommand, error) {
	tag, err := d.ReadU8()
	if err != nil {
		return ClientCommand{}, err
	}
	if int(tag) >= len(commandTable) || commandTable[tag].decode == nil {
		return ClientCommand{}, &UnknownPacketTypeError{Tag: tag}
	}
	return commandTable[tag].decode(d)
}

// --- shared field-shape encoders/decoders, reused across variants ---

func encKey(w *Writer, c ClientCommand) error { return w.WriteString(c.Key) }
func decKey(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		return ClientCommand{Op: op, Key: key}, err
	}
}

func encKeys(w *Writer, c ClientCommand) error { return w.WriteStringSlice(c.Keys) }
func decKeys(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		keys, err := r.ReadStringSlice()
		return ClientCommand{Op: op, Keys: keys}, err
	}
}

func encKeyExpire(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteU32(c.Expire)
}
func decKeyExpire(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		expire, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Expire: expire}, err
	}
}

func encKeyBy(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteU32(c.By)
}
func decKeyBy(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		by, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, By: by}, err
	}
}

func encKeyValue(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteValueType(c.Value)
}
func decKeyValue(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		value, err := r.ReadValueType()
		return ClientCommand{Op: op, Key: key, Value: value}, err
	}
}

func encKeyValueExpire(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteValueType(c.Value); err != nil {
		return err
	}
	return w.WriteU32(c.Expire)
}
func decKeyValueExpire(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		value, err := r.ReadValueType()
		if err != nil {
			return ClientCommand{}, err
		}
		expire, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Value: value, Expire: expire}, err
	}
}

func encKeysValues(w *Writer, c ClientCommand) error {
	if err := w.WriteStringSlice(c.Keys); err != nil {
		return err
	}
	return w.WriteValueSlice(c.Values)
}
func decKeysValues(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		keys, err := r.ReadStringSlice()
		if err != nil {
			return ClientCommand{}, err
		}
		values, err := r.ReadValueSlice()
		return ClientCommand{Op: op, Keys: keys, Values: values}, err
	}
}

func encKeyField(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteString(c.Field)
}
func decKeyField(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		field, err := r.ReadString()
		return ClientCommand{Op: op, Key: key, Field: field}, err
	}
}

func encKeyFields(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteStringSlice(c.Fields)
}
func decKeyFields(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		fields, err := r.ReadStringSlice()
		return ClientCommand{Op: op, Key: key, Fields: fields}, err
	}
}

func encKeyCount(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteU32(c.Count)
}
func decKeyCount(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		count, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Count: count}, err
	}
}

func encKeyFieldBy(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteString(c.Field); err != nil {
		return err
	}
	return w.WriteU32(c.By)
}
func decKeyFieldBy(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		field, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		by, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Field: field, By: by}, err
	}
}

func encKeyFieldValue(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteString(c.Field); err != nil {
		return err
	}
	return w.WriteValueType(c.Value)
}
func decKeyFieldValue(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		field, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		value, err := r.ReadValueType()
		return ClientCommand{Op: op, Key: key, Field: field, Value: value}, err
	}
}

func encKeyFieldValueExpire(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteString(c.Field); err != nil {
		return err
	}
	if err := w.WriteValueType(c.Value); err != nil {
		return err
	}
	return w.WriteU32(c.Expire)
}
func decKeyFieldValueExpire(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		field, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		value, err := r.ReadValueType()
		if err != nil {
			return ClientCommand{}, err
		}
		expire, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Field: field, Value: value, Expire: expire}, err
	}
}

func encKeyFieldExpire(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteString(c.Field); err != nil {
		return err
	}
	return w.WriteU32(c.Expire)
}
func decKeyFieldExpire(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		field, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		expire, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Field: field, Expire: expire}, err
	}
}

func encKeyFieldPairs(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteFieldPairSlice(c.FieldPairs)
}
func decKeyFieldPairs(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		pairs, err := r.ReadFieldPairSlice()
		return ClientCommand{Op: op, Key: key, FieldPairs: pairs}, err
	}
}

func encKeyScoreMember(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteU32(c.Score); err != nil {
		return err
	}
	return w.WriteString(c.Member)
}
func decKeyScoreMember(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		score, err := r.ReadU32()
		if err != nil {
			return ClientCommand{}, err
		}
		member, err := r.ReadString()
		return ClientCommand{Op: op, Key: key, Score: score, Member: member}, err
	}
}

func encKeyMember(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteString(c.Member)
}
func decKeyMember(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		member, err := r.ReadString()
		return ClientCommand{Op: op, Key: key, Member: member}, err
	}
}

func encKeyMembers(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	return w.WriteStringSlice(c.Members)
}
func decKeyMembers(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		members, err := r.ReadStringSlice()
		return ClientCommand{Op: op, Key: key, Members: members}, err
	}
}

func encKeyMemberExpire(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteString(c.Member); err != nil {
		return err
	}
	return w.WriteU32(c.Expire)
}
func decKeyMemberExpire(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		member, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		expire, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Member: member, Expire: expire}, err
	}
}

func encKeyIndexExpire(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteU32(c.Index); err != nil {
		return err
	}
	return w.WriteU32(c.Expire)
}
func decKeyIndexExpire(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		index, err := r.ReadU32()
		if err != nil {
			return ClientCommand{}, err
		}
		expire, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Index: index, Expire: expire}, err
	}
}

func encKeyStartEnd(w *Writer, c ClientCommand) error {
	if err := w.WriteString(c.Key); err != nil {
		return err
	}
	if err := w.WriteU32(c.Start); err != nil {
		return err
	}
	return w.WriteU32(c.End)
}
func decKeyStartEnd(op CommandOp) func(*Reader) (ClientCommand, error) {
	return func(r *Reader) (ClientCommand, error) {
		key, err := r.ReadString()
		if err != nil {
			return ClientCommand{}, err
		}
		start, err := r.ReadU32()
		if err != nil {
			return ClientCommand{}, err
		}
		end, err := r.ReadU32()
		return ClientCommand{Op: op, Key: key, Start: start, End: end}, err
	}
}
