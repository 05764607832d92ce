package source

import (
	"context"
	"fmt"
	"io"
	"net"
	pathpkg "path"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"github.com/tabvdev/tabv/internal/buffer"
	"golang.org/x/crypto/ssh"
)

// Config configures a remote SFTP fetch.
type Config struct {
	Target    string // user@host
	Port      int
	BatchMode bool
	Timeout   time.Duration
}

// SFTPFetcher loads remote files over the SFTP subsystem, one SSH session
// for all requested paths.
type SFTPFetcher struct {
	cfg  Config
	dial func(context.Context, Config) (sftpClient, io.Closer, error)
}

type sftpClient interface {
	Open(string) (io.ReadCloser, error)
	Stat(string) (sftpFileInfo, error)
	RealPath(string) (string, error)
}

type sftpFileInfo interface {
	Size() int64
	ModTime() time.Time
	IsDir() bool
}

var dialContext = func(ctx context.Context, network, address string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, network, address)
}

var sshNewClientConn = func(conn net.Conn, addr string, config *ssh.ClientConfig) (ssh.Conn, <-chan ssh.NewChannel, <-chan *ssh.Request, error) {
	return ssh.NewClientConn(conn, addr, config)
}

// NewSFTPFetcher creates a new remote fetcher.
func NewSFTPFetcher(cfg Config) *SFTPFetcher {
	return &SFTPFetcher{cfg: cfg, dial: dialSFTP}
}

// Fetch downloads the given remote paths into buffers, in argument order.
// Progress snapshots are sent on progress (non-blocking; may be nil).
func (f *SFTPFetcher) Fetch(ctx context.Context, paths []string, progress chan<- Progress) ([]*buffer.Buffer, error) {
	if f == nil {
		return nil, fmt.Errorf("remote fetcher is nil")
	}
	if f.dial == nil {
		f.dial = dialSFTP
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no remote paths given")
	}

	client, closer, err := f.dial(ctx, f.cfg)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return f.fetchWithClient(ctx, client, paths, progress)
}

func (f *SFTPFetcher) fetchWithClient(ctx context.Context, client sftpClient, paths []string, progress chan<- Progress) ([]*buffer.Buffer, error) {
	_, host, err := parseSSHTarget(f.cfg.Target)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	var bytesRead int64

	report := func(p Progress) {
		if progress == nil {
			return
		}
		select {
		case progress <- p:
		default:
		}
	}

	buffers := make([]*buffer.Buffer, 0, len(paths))
	for i, rawPath := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		remotePath := cleanRemotePath(rawPath)
		if resolved, err := client.RealPath(remotePath); err == nil {
			remotePath = cleanRemotePath(resolved)
		}

		report(Progress{
			CurrentPath: remotePath,
			FilesDone:   i,
			FilesTotal:  len(paths),
			BytesRead:   bytesRead,
			StartTime:   startTime,
			Duration:    time.Since(startTime),
		})

		info, err := client.Stat(remotePath)
		if err != nil {
			return nil, fmt.Errorf("cannot stat remote path %q: %w", remotePath, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", remotePath)
		}
		if info.Size() > maxFileSize {
			return nil, fmt.Errorf("%s is too large (%d bytes, limit %d)", remotePath, info.Size(), maxFileSize)
		}

		content, err := readRemoteFile(ctx, client, remotePath, &bytesRead)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", remotePath, err)
		}

		b := buffer.New(
			host+":"+pathpkg.Base(remotePath),
			f.cfg.Target+":"+remotePath,
			content,
		)
		b.Mtime = info.ModTime()
		b.Remote = true
		buffers = append(buffers, b)
	}

	report(Progress{
		FilesDone:  len(paths),
		FilesTotal: len(paths),
		BytesRead:  bytesRead,
		Done:       true,
		StartTime:  startTime,
		Duration:   time.Since(startTime),
	})

	return buffers, nil
}

func readRemoteFile(ctx context.Context, client sftpClient, remotePath string, bytesRead *int64) ([]byte, error) {
	r, err := client.Open(remotePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var content []byte
	chunk := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		if n > 0 {
			content = append(content, chunk[:n]...)
			*bytesRead += int64(n)
		}
		if err == io.EOF {
			return content, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func cleanRemotePath(p string) string {
	if p == "" {
		return "."
	}
	clean := pathpkg.Clean(strings.ReplaceAll(p, "\\", "/"))
	if clean == "" {
		return "."
	}
	return clean
}

func dialSFTP(ctx context.Context, cfg Config) (sftpClient, io.Closer, error) {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, nil, fmt.Errorf("ssh port must be between 1 and 65535")
	}

	user, host, err := parseSSHTarget(cfg.Target)
	if err != nil {
		return nil, nil, err
	}

	hostCB, err := hostKeyCallback(host, cfg.Port, cfg.BatchMode)
	if err != nil {
		return nil, nil, err
	}

	auth, err := buildAuthMethods(user, host, cfg.BatchMode)
	if err != nil {
		return nil, nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sshConfig := &ssh.ClientConfig{
		User:            user,
		Auth:            auth,
		HostKeyCallback: hostCB,
		Timeout:         timeout,
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", cfg.Port))
	sshClient, err := connectSSH(dialCtx, addr, sshConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("SSH connection failed: %w", err)
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, nil, fmt.Errorf("cannot start SFTP subsystem: %w", err)
	}

	closer := &remoteCloser{ssh: sshClient, sftp: client}
	return &sftpClientAdapter{client: client}, closer, nil
}

// sftpClientAdapter narrows *sftp.Client to the interface the fetcher
// needs, keeping the fetch logic testable without a live server.
type sftpClientAdapter struct {
	client *sftp.Client
}

func (a *sftpClientAdapter) Open(path string) (io.ReadCloser, error) {
	return a.client.Open(path)
}

func (a *sftpClientAdapter) Stat(path string) (sftpFileInfo, error) {
	info, err := a.client.Stat(path)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (a *sftpClientAdapter) RealPath(path string) (string, error) {
	return a.client.RealPath(path)
}

func connectSSH(ctx context.Context, addr string, config *ssh.ClientConfig) (*ssh.Client, error) {
	conn, err := dialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	// Ensure cancellation interrupts handshake/authentication.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	c, chans, reqs, err := sshNewClientConn(conn, addr, config)
	close(done)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}

type remoteCloser struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

func (c *remoteCloser) Close() error {
	var retErr error
	if c.sftp != nil {
		if err := c.sftp.Close(); err != nil {
			retErr = err
		}
	}
	if c.ssh != nil {
		if err := c.ssh.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}
	return retErr
}
