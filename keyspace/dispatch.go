package keyspace

import "github.com/emberdb/emberdb/wire"

type handlerFunc func(*Keyspace, wire.ClientCommand) (wire.ServerResponse, error)

// dispatch centralizes the variant-to-handler mapping as data, per the
// "touch exactly one place" design note: adding a command means adding one
// entry here and one handler function, nothing else.
var dispatch = map[wire.CommandOp]handlerFunc{
	wire.OpExpire:  handleExpire,
	wire.OpPersist: handlePersist,
	wire.OpTtl:     handleTtl,
	wire.OpDel:     handleDel,

	wire.OpDecr:   handleDecr,
	wire.OpDecrBy: handleDecrBy,
	wire.OpIncr:   handleIncr,
	wire.OpIncrBy: handleIncrBy,
	wire.OpGet:    handleGet,
	wire.OpGetDel: handleGetDel,
	wire.OpGetEx:  handleGetEx,
	wire.OpGetSet: handleGetSet,
	wire.OpMGet:   handleMGet,
	wire.OpSet:    handleSet,
	wire.OpSetEx:  handleSetEx,
	wire.OpSetNx:  handleSetNx,
	wire.OpMSet:   handleMSet,
	wire.OpMSetNx: handleMSetNx,

	wire.OpHExpire:  handleHExpire,
	wire.OpHDel:     handleHDel,
	wire.OpHDelGet:  handleHDelGet,
	wire.OpHPopRand: handleHPopRand,
	wire.OpHExists:  handleHExists,
	wire.OpHGet:     handleHGet,
	wire.OpHGetAll:  handleHGetAll,
	wire.OpHMGet:    handleHMGet,
	wire.OpHKeys:    handleHKeys,
	wire.OpHValues:  handleHValues,
	wire.OpHLen:     handleHLen,
	wire.OpHDecr:    handleHDecr,
	wire.OpHDecrBy:  handleHDecrBy,
	wire.OpHIncr:    handleHIncr,
	wire.OpHIncrBy:  handleHIncrBy,
	wire.OpHSet:     handleHSet,
	wire.OpHSetNx:   handleHSetNx,
	wire.OpHSetEx:   handleHSetEx,
	wire.OpHMSet:    handleHMSet,
	wire.OpHMSetNx:  handleHMSetNx,

	wire.OpZAdd:    handleZAdd,
	wire.OpZAddNx:  handleZAddNx,
	wire.OpZIncrBy: handleZIncrBy,
	wire.OpZDecrBy: handleZDecrBy,
	wire.OpZScore:  handleZScore,
	wire.OpZMScore: handleZMScore,
	wire.OpZPopMin: handleZPopMin,
	wire.OpZPopMax: handleZPopMax,
	wire.OpZRem:    handleZRem,
	wire.OpZExpire: handleZExpire,

	wire.OpLLPush:   handleLLPush,
	wire.OpLLPushNx: handleLLPushNx,
	wire.OpLLPushEx: handleLLPushEx,
	wire.OpLRPush:   handleLRPush,
	wire.OpLRPushNx: handleLRPushNx,
	wire.OpLRPushEx: handleLRPushEx,
	wire.OpLExpire:  handleLExpire,
	wire.OpLLPop:    handleLLPop,
	wire.OpLRPop:    handleLRPop,
	wire.OpLRange:   handleLRange,

	wire.OpSAdd:     handleSAdd,
	wire.OpSAddNx:   handleSAddNx,
	wire.OpSAddEx:   handleSAddEx,
	wire.OpSMember:  handleSMember,
	wire.OpSMembers: handleSMembers,
	wire.OpSExpire:  handleSExpire,
	wire.OpSRem:     handleSRem,
	wire.OpSPop:     handleSPop,
}

// Execute runs cmd against k and returns the response to send back, or the
// handler-level error to be reflected as ServerResponse.Error by the
// caller. A command with no registered handler is a programming error, not
// a client-triggerable state: it can only happen if wire.commandTable and
// this table drift apart.
func Execute(k *Keyspace, cmd wire.ClientCommand) (wire.ServerResponse, error) {
	h, ok := dispatch[cmd.Op]
	if !ok {
		return wire.ServerResponse{}, badState("no handler registered for command %q", cmd.Name())
	}
	return h(k, cmd)
}
