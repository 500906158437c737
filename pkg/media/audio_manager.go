// Package media 将无窗口的游戏核心接到 Ebitengine 上
//
// 提供三个适配器：Renderer 实现 game.Surface，AudioManager 实现 game.AudioSink，
// KeyboardInput 实现 game.InputSource。游戏核心包不依赖本包。
package media

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/gonewx/starfall/pkg/assets"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// 默认音量
const (
	DefaultMusicVolume = 0.6
	DefaultSoundVolume = 1.0
)

// AudioManager 音频管理器
//
// 按资源名播放音效与背景音乐，播放器在第一次使用时创建并缓存。
// 资源缺失或解码失败只记录一次警告，之后同名请求静默忽略。
type AudioManager struct {
	context        *audio.Context
	resources      *assets.ResourceManager
	soundPlayers   map[string]*audio.Player // 音效播放器缓存（资源名 -> 播放器）
	musicPlayers   map[string]*audio.Player // 背景音乐播放器缓存（资源名 -> 播放器）
	failed         map[string]bool
	currentMusic   *audio.Player
	currentMusicID string
	musicVolume    float64
	soundVolume    float64
}

// NewAudioManager 创建音频管理器
//
// 参数:
//   - ctx: 音频上下文，整个进程只能创建一个
//   - rm: 资源管理器，提供音频文件路径和文件系统
func NewAudioManager(ctx *audio.Context, rm *assets.ResourceManager) *AudioManager {
	return &AudioManager{
		context:      ctx,
		resources:    rm,
		soundPlayers: make(map[string]*audio.Player),
		musicPlayers: make(map[string]*audio.Player),
		failed:       make(map[string]bool),
		musicVolume:  DefaultMusicVolume,
		soundVolume:  DefaultSoundVolume,
	}
}

// SetVolumes 设置音乐和音效音量（0..1），立即作用于正在播放的音乐
func (am *AudioManager) SetVolumes(music, sound float64) {
	am.musicVolume = clampVolume(music)
	am.soundVolume = clampVolume(sound)
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.musicVolume)
	}
}

// PlaySound 从头播放音效
func (am *AudioManager) PlaySound(name string) {
	player := am.getSoundPlayer(name)
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn("[AudioManager] failed to rewind sound", "sound", name, "err", err)
	}
	player.SetVolume(am.soundVolume)
	player.Play()
}

// StopSound 停止音效
func (am *AudioManager) StopSound(name string) {
	if player, ok := am.soundPlayers[name]; ok {
		player.Pause()
	}
}

// PlayMusic 循环播放背景音乐
// 同一首音乐正在播放时不会重新开始
func (am *AudioManager) PlayMusic(name string) {
	if am.currentMusicID == name && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return
	}
	am.StopMusic()

	player := am.getMusicPlayer(name)
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn("[AudioManager] failed to rewind music", "music", name, "err", err)
	}
	player.SetVolume(am.musicVolume)
	player.Play()
	am.currentMusic = player
	am.currentMusicID = name
	log.Debug("[AudioManager] music started", "music", name)
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		log.Debug("[AudioManager] music stopped", "music", am.currentMusicID)
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// Close 关闭所有播放器
func (am *AudioManager) Close() {
	am.StopMusic()
	for name, p := range am.soundPlayers {
		if err := p.Close(); err != nil {
			log.Debug("[AudioManager] failed to close sound player", "sound", name, "err", err)
		}
	}
	for name, p := range am.musicPlayers {
		if err := p.Close(); err != nil {
			log.Debug("[AudioManager] failed to close music player", "music", name, "err", err)
		}
	}
}

func (am *AudioManager) getSoundPlayer(name string) *audio.Player {
	if p, ok := am.soundPlayers[name]; ok {
		return p
	}
	key := "sound:" + name
	if am.failed[key] {
		return nil
	}
	p, ok := am.resources.SoundPath(name)
	if !ok {
		am.fail(key, name, assets.ErrUnknownAsset)
		return nil
	}
	player, err := am.newPlayer(p, false)
	if err != nil {
		am.fail(key, name, err)
		return nil
	}
	am.soundPlayers[name] = player
	return player
}

func (am *AudioManager) getMusicPlayer(name string) *audio.Player {
	if p, ok := am.musicPlayers[name]; ok {
		return p
	}
	key := "music:" + name
	if am.failed[key] {
		return nil
	}
	p, ok := am.resources.MusicPath(name)
	if !ok {
		am.fail(key, name, assets.ErrUnknownAsset)
		return nil
	}
	player, err := am.newPlayer(p, true)
	if err != nil {
		am.fail(key, name, err)
		return nil
	}
	am.musicPlayers[name] = player
	return player
}

func (am *AudioManager) fail(key, name string, err error) {
	am.failed[key] = true
	log.Warn("[AudioManager] audio unavailable", "name", name, "err", err)
}

// newPlayer 读取整个文件到内存后解码，loop 为 true 时包装为无限循环
func (am *AudioManager) newPlayer(p string, loop bool) (*audio.Player, error) {
	f, err := am.resources.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", p, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	stream, err := decode(p, bytes.NewReader(data), am.context.SampleRate())
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := am.context.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}
	return player, nil
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decode 按扩展名选择解码器
func decode(p string, r io.ReadSeeker, sampleRate int) (decodedStream, error) {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .mp3, .wav)", ext)
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
