// Package tg5012a provides a client for the Aim-TTi TG5012A dual-channel
// function/pulse generator over a serial link or a LAN socket.
//
// The instrument speaks a line-oriented ASCII protocol: every command or
// query is one line terminated by "\n", every response is one line. The
// session can follow every command with a read of the instrument's error
// registers (EER? after a set, QER? after a query) and return the panel to
// local control with LOCAL, so the operator keeps front-panel access between
// remote commands.
//
// Key Features:
//   - Serial (go.bug.st/serial) and TCP transports behind one Transport interface
//   - Per-command status register checks reported as *StatusError
//   - Argument validation before any I/O, reported as *ValidationError
//   - Typed command surface for carrier, pulse, burst/trigger, coupling and system commands
//   - ChannelBatch for running a series of commands pinned to one channel
//
// Example Usage:
//
//	cfg := tg5012a.DefaultConfig()
//	cfg.SerialPort = "/dev/ttyACM0"
//	cfg.Logger = func(msg string) { log.Println(msg) }
//
//	pg := tg5012a.New(cfg)
//	if err := pg.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer pg.Close()
//
//	// channel-scoped commands act on the last selected channel
//	if err := pg.SelectChannel(ctx, tg5012a.Channel1); err != nil {
//	    log.Fatal(err)
//	}
//	if err := pg.Pulse(ctx, tg5012a.DefaultPulseSettings()); err != nil {
//	    log.Fatal(err)
//	}
package tg5012a
