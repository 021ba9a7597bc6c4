// Package main provides the entry point for saivsd.
//
// saivsd loads a virtual-switch configuration, brings up the metadata
// validator and the virtual-switch reference driver behind it, and
// exercises the function-table surface (§6.1): api_initialize creates
// one switch per the configured profile, a short scripted object
// sequence exercises create/set/get/remove against it, and
// api_uninitialize is logged while the switch stays in place; the
// process then runs until SIGINT or SIGTERM. It also serves the
// Prometheus /metrics endpoint for the lifetime of the process.
//
// Usage:
//
//	saivsd [flags]
//
// Flags:
//
//	--config string   Path to a YAML configuration file
//	--log-level string  Overrides logging.level from config
//
// Environment Variables:
//
//	SAI_CORE_CONFIG_FILE          Path to configuration file
//	SAI_CORE_SWITCH_PROFILE       bcm56850 or mlnx2700
//	SAI_CORE_SWITCH_MAX_SWITCHES  Sets switch.maxSwitches (validated as 1..255)
//	SAI_CORE_LOG_LEVEL            debug, info, warn, error
//	SAI_CORE_METRICS_LISTEN_ADDRESS  Address the /metrics endpoint binds to
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiglabs/sai-core/pkg/config"
	"github.com/tiglabs/sai-core/pkg/logging"
	"github.com/tiglabs/sai-core/pkg/metrics"
	"github.com/tiglabs/sai-core/pkg/sai/db"
	"github.com/tiglabs/sai-core/pkg/sai/entry"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
	"github.com/tiglabs/sai-core/pkg/sai/validator"
	"github.com/tiglabs/sai-core/pkg/sai/vs"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML configuration file")
	logLevel := flag.String("log-level", "", "overrides logging.level from config")
	flag.Parse()

	cfg, err := loadConfig(*configFile, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "saivsd:", err)
		os.Exit(1)
	}

	if err := logging.InitGlobalLogger(logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.File,
		AddCaller:  true,
		CallerSkip: 1,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "saivsd: building logger:", err)
		os.Exit(1)
	}
	log := logging.GetGlobalLogger().WithName("saivsd")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		metrics.Register()
		go serveMetrics(ctx, log, cfg.Metrics.ListenAddress)
	}

	if err := apiInitialize(log, cfg); err != nil {
		log.Error(err, "api_initialize failed")
		os.Exit(1)
	}

	log.Info("saivsd ready, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutting down")
}

func loadConfig(configFile, logLevel string) (*config.Config, error) {
	if configFile != "" {
		os.Setenv("SAI_CORE_CONFIG_FILE", configFile) //nolint:errcheck
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

func serveMetrics(ctx context.Context, log *logging.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	log.Info("serving metrics", "address", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(err, "metrics server stopped")
	}
}

// apiInitialize mirrors the SAI function table's api_initialize: it
// wires up the shadow database, the generic validator and the
// virtual-switch driver, creates one switch under the configured
// profile, and runs a short scripted object sequence to exercise
// create/set/get/remove end to end, then logs api_uninitialize. The
// switch is not removed.
func apiInitialize(log *logging.Logger, cfg *config.Config) error {
	database := db.NewDatabase()
	v := validator.New(database)
	w := entry.New(v, nil)

	profile := vs.ParseProfile(cfg.Switch.Profile)
	driver := vs.New(w, profile)
	w.Driver = driver
	v.Refresh = driver

	log.Info("api_initialize", "profile", profile.String(), "instance", driver.Instance.String())

	switchID, err := w.CreateSwitch(validator.AttrList{
		metadata.SwitchAttrInitSwitch: types.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("create_switch: %s", err)
	}

	if err := runScriptedSequence(log, w, driver, switchID); err != nil {
		return err
	}

	log.Info("api_uninitialize", "switch", switchID.String())
	return nil
}

// runScriptedSequence exercises a handful of object families end to
// end against the switch api_initialize just created: it sets and reads
// back the first port's admin state, creates a buffer pool and a buffer
// profile on it and removes them again in dependency order, then runs
// runFdbSequence.
func runScriptedSequence(log *logging.Logger, w *entry.Wrapper, driver *vs.Driver, switchID types.OID) error {
	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, switchID)
	attrs, err := w.GetAttributes(mk, switchID, []metadata.AttrID{
		metadata.SwitchAttrPortList,
		metadata.SwitchAttrPortNumber,
	})
	if err != nil {
		return fmt.Errorf("get_switch_attribute: %s", err)
	}
	portList := attrs[metadata.SwitchAttrPortList].(types.OIDList)
	log.Info("switch seeded", "port_count", attrs[metadata.SwitchAttrPortNumber])

	port := portList.Items[0]
	portMK := types.MetaKeyForOID(types.ObjectTypePort, port)
	if err := w.SetAttribute(portMK, switchID, metadata.PortAttrAdminState, types.Bool(false)); err != nil {
		return fmt.Errorf("set_port_attribute: %s", err)
	}
	portAttrs, err := w.GetAttributes(portMK, switchID, []metadata.AttrID{metadata.PortAttrAdminState})
	if err != nil {
		return fmt.Errorf("get_port_attribute: %s", err)
	}
	log.Info("port admin state toggled", "port", port.String(), "admin_state", portAttrs[metadata.PortAttrAdminState])

	poolID, err := w.CreateObject(types.ObjectTypeBufferPool, switchID, validator.AttrList{
		metadata.BufferPoolAttrType: types.S32(metadata.BufferPoolTypeIngress),
		metadata.BufferPoolAttrSize: types.U32(1024 * 1024),
	})
	if err != nil {
		return fmt.Errorf("create_buffer_pool: %s", err)
	}

	profileID, err := w.CreateObject(types.ObjectTypeBufferProfile, switchID, validator.AttrList{
		metadata.BufferProfileAttrPoolID:       types.OIDValue(poolID),
		metadata.BufferProfileAttrReservedSize: types.U32(0),
		metadata.BufferProfileAttrSharedDynamic: types.S32(8),
	})
	if err != nil {
		return fmt.Errorf("create_buffer_profile: %s", err)
	}

	if err := w.RemoveObject(types.MetaKeyForOID(types.ObjectTypeBufferProfile, profileID)); err != nil {
		return fmt.Errorf("remove_buffer_profile: %s", err)
	}
	if err := w.RemoveObject(types.MetaKeyForOID(types.ObjectTypeBufferPool, poolID)); err != nil {
		return fmt.Errorf("remove_buffer_pool: %s", err)
	}

	if err := runFdbSequence(log, w, driver, switchID); err != nil {
		return err
	}

	log.Info("scripted sequence complete")
	return nil
}

// runFdbSequence exercises the struct-keyed (NOI) create/remove path
// the OID-keyed objects above don't touch: a simulated MAC learn
// creates an FDB entry on the default 1Q bridge's first bridge port,
// then a simulated age-out removes it.
func runFdbSequence(log *logging.Logger, w *entry.Wrapper, driver *vs.Driver, switchID types.OID) error {
	mk := types.MetaKeyForOID(types.ObjectTypeSwitch, switchID)
	swAttrs, err := w.GetAttributes(mk, switchID, []metadata.AttrID{metadata.SwitchAttrDefault1QBridgeID})
	if err != nil {
		return fmt.Errorf("get_switch_attribute: %s", err)
	}
	bridge := types.OID(swAttrs[metadata.SwitchAttrDefault1QBridgeID].(types.OIDValue))

	bridgeAttrs, err := w.GetAttributes(types.MetaKeyForOID(types.ObjectTypeBridge, bridge), switchID,
		[]metadata.AttrID{metadata.BridgeAttrPortList})
	if err != nil {
		return fmt.Errorf("get_bridge_attribute: %s", err)
	}
	bridgePorts := bridgeAttrs[metadata.BridgeAttrPortList].(types.OIDList)
	if len(bridgePorts.Items) == 0 {
		return fmt.Errorf("default 1q bridge has no bridge ports")
	}

	key := types.FdbEntryKey{
		SwitchID: switchID,
		Mac:      types.Mac{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		Vlan:     1,
		BridgeID: bridge,
	}

	if err := driver.NotifyFdbEvent(switchID, key, vs.FdbEventLearned, bridgePorts.Items[0]); err != nil {
		return fmt.Errorf("notify_fdb_event(learned): %s", err)
	}
	log.Info("fdb entry learned", "bridge_port", bridgePorts.Items[0].String())

	if err := driver.NotifyFdbEvent(switchID, key, vs.FdbEventAged, bridgePorts.Items[0]); err != nil {
		return fmt.Errorf("notify_fdb_event(aged): %s", err)
	}
	log.Info("fdb entry aged out")

	return nil
}
